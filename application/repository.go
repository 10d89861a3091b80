package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals that the application does not exist.
var ErrNotFound = errors.New("application: not found")

var columnWhitelist = map[string]string{
	"ad_id":        "ad_id",
	"company_name": "company_name",
	"name":         "name",
	"lastname":     "lastname",
	"email":        "email",
	"phone":        "phone",
	"motivations":  "motivations",
	"website":      "website",
	"cv":           "cv",
}

// Repository handles data access for applications.
type Repository interface {
	List(ctx context.Context) ([]Application, error)
	ListByAd(ctx context.Context, adID int64) ([]Application, error)
	Create(ctx context.Context, req CreateRequest) (Application, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed application repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const selectColumns = "id, ad_id, company_name, name, lastname, email, phone, motivations, website, cv, created_at"

// List returns every application, newest first.
func (r *PGRepository) List(ctx context.Context) ([]Application, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf("SELECT %s FROM apply ORDER BY created_at DESC", selectColumns))
	if err != nil {
		return nil, fmt.Errorf("application: list: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// ListByAd returns the applications submitted for one posting, used by the
// applicant-list view.
func (r *PGRepository) ListByAd(ctx context.Context, adID int64) ([]Application, error) {
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf("SELECT %s FROM apply WHERE ad_id = $1 ORDER BY created_at DESC", selectColumns), adID)
	if err != nil {
		return nil, fmt.Errorf("application: list by ad: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// Create inserts an application.
func (r *PGRepository) Create(ctx context.Context, req CreateRequest) (Application, error) {
	insertSQL := fmt.Sprintf(`
		INSERT INTO apply (ad_id, company_name, name, lastname, email, phone, motivations, website, cv)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, selectColumns)

	app, err := scanApplication(r.pool.QueryRow(ctx, insertSQL,
		req.AdID,
		req.CompanyName,
		req.Name,
		req.Lastname,
		req.Email,
		req.Phone,
		req.Motivations,
		req.Website,
		req.CV,
	))
	if err != nil {
		return Application{}, fmt.Errorf("application: create: %w", err)
	}
	return app, nil
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
		"UPDATE apply SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, updateSQL, args...)
	if err != nil {
		return false, fmt.Errorf("application: update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes an application by id and reports whether a row was touched.
func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM apply WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("application: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func collect(rows pgx.Rows) ([]Application, error) {
	var out []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("application: scan: %w", err)
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func scanApplication(row pgx.Row) (Application, error) {
	var app Application
	err := row.Scan(
		&app.ID,
		&app.AdID,
		&app.CompanyName,
		&app.Name,
		&app.Lastname,
		&app.Email,
		&app.Phone,
		&app.Motivations,
		&app.Website,
		&app.CV,
		&app.CreatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	return app, nil
}
