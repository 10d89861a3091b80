package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that the company does not exist.
var ErrNotFound = errors.New("company: not found")

var columnWhitelist = map[string]string{
	"name":   "name",
	"emails": "emails",
}

// Repository handles data access for companies.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Options(ctx context.Context) ([]Option, error)
	Create(ctx context.Context, name string, emails []string) (Company, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed company repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// List returns every company.
func (r *PGRepository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, emails, created_at FROM company ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("company: list: %w", err)
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("company: list scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Options returns the id/name pairs used by form selects.
func (r *PGRepository) Options(ctx context.Context) ([]Option, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM company ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("company: options: %w", err)
	}
	defer rows.Close()

	var out []Option
	for rows.Next() {
		var opt Option
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("company: options scan: %w", err)
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}

// Create inserts a company with its normalized email list.
func (r *PGRepository) Create(ctx context.Context, name string, emails []string) (Company, error) {
	const insertSQL = `
		INSERT INTO company (name, emails)
		VALUES ($1, $2)
		RETURNING id, name, emails, created_at
	`

	c, err := scanCompany(r.pool.QueryRow(ctx, insertSQL, name, emails))
	if err != nil {
		return Company{}, fmt.Errorf("company: create: %w", err)
	}
	return c, nil
}

// Update applies a partial update built from the whitelisted subset of
// fields and reports whether a row was touched.
func (r *PGRepository) Update(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	setClauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)

	for name, value := range fields {
		column, ok := columnWhitelist[name]
		if !ok {
			continue
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(setClauses) == 0 {
		return false, nil
	}

	args = append(args, id)
	updateSQL := fmt.Sprintf(
		"UPDATE company SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, updateSQL, args...)
	if err != nil {
		return false, fmt.Errorf("company: update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a company by id and reports whether a row was touched.
func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM company WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("company: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCompany(row pgx.Row) (Company, error) {
	var c Company
	if err := row.Scan(&c.ID, &c.Name, &c.Emails, &c.CreatedAt); err != nil {
		return Company{}, err
	}
	return c, nil
}
