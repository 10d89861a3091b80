package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that the posting does not exist.
var ErrNotFound = errors.New("job: not found")

var columnWhitelist = map[string]string{
	"title":            "title",
	"description":      "description",
	"jobTypes":         "job_types",
	"minSalary":        "min_salary",
	"maxSalary":        "max_salary",
	"advantages":       "advantages",
	"company":          "company",
	"location":         "location",
	"positionLocation": "position_location",
}

// Repository handles data access for job postings.
type Repository interface {
	List(ctx context.Context) ([]Posting, error)
	GetByID(ctx context.Context, id int64) (Posting, error)
	Create(ctx context.Context, req CreateRequest) (Posting, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed posting repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const selectColumns = "id, title, description, job_types, min_salary, max_salary, advantages, company, location, position_location, created_at, updated_at"

// List returns all postings, newest first.
func (r *PGRepository) List(ctx context.Context) ([]Posting, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM ads ORDER BY created_at DESC", selectColumns))
	if err != nil {
		return nil, fmt.Errorf("job: list: %w", err)
	}
	defer rows.Close()

	var out []Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("job: list scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID retrieves one posting.
func (r *PGRepository) GetByID(ctx context.Context, id int64) (Posting, error) {
	p, err := scanPosting(r.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM ads WHERE id = $1", selectColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Posting{}, ErrNotFound
		}
		return Posting{}, fmt.Errorf("job: get by id: %w", err)
	}
	return p, nil
}

// Create inserts a posting.
func (r *PGRepository) Create(ctx context.Context, req CreateRequest) (Posting, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO ads (title, description, job_types, min_salary, max_salary, advantages, company, location, position_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, selectColumns)

	p, err := scanPosting(r.pool.QueryRow(ctx, insertSQL,
		req.Title,
		req.Description,
		req.JobTypes,
		req.MinSalary,
		req.MaxSalary,
		req.Advantages,
		req.Company,
		req.Location,
		req.PositionLocation,
	))
	if err != nil {
		return Posting{}, fmt.Errorf("job: create: %w", err)
	}
	return p, nil
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
		"UPDATE ads SET %s, updated_at = now() WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, updateSQL, args...)
	if err != nil {
		return false, fmt.Errorf("job: update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a posting by id and reports whether a row was touched.
func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("job: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanPosting(row pgx.Row) (Posting, error) {
	var p Posting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.JobTypes,
		&p.MinSalary,
		&p.MaxSalary,
		&p.Advantages,
		&p.Company,
		&p.Location,
		&p.PositionLocation,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return Posting{}, err
	}
	return p, nil
}
