package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound signals that the user does not exist.
	ErrNotFound = errors.New("user: not found")
	// ErrDuplicateEmail signals that the email is already registered.
	ErrDuplicateEmail = errors.New("user: email already exists")
)

// columnWhitelist enumerates the updatable columns, keyed by their API
// field name.  Anything else in an update payload is silently dropped.
var columnWhitelist = map[string]string{
	"email":    "email",
	"password": "password",
	"userType": "user_type",
	"name":     "name",
	"lastname": "lastname",
	"phone":    "phone",
	"website":  "website",
}

// Repository handles data access for user accounts.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, params CreateParams) (Record, error)
	Update(ctx context.Context, id int64, fields map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateParams contains write parameters for creating users.  Password is
// already hashed by the service.
type CreateParams struct {
	Email        string
	PasswordHash string
	UserType     string
	Name         string
	Lastname     string
	Phone        *string
	Website      *string
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a PostgreSQL-backed user repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// List returns every user record.  The password hash is selected so the
// service can reuse records internally, but handlers only serialize the
// public projection.
func (r *PGRepository) List(ctx context.Context) ([]Record, error) {
	const selectSQL = `
		SELECT id, email, password, user_type, name, lastname, phone, website, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, selectSQL)
	if err != nil {
		return nil, fmt.Errorf("user: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("user: list scan: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Create inserts a new user with a hashed password.
func (r *PGRepository) Create(ctx context.Context, params CreateParams) (Record, error) {
	const insertSQL = `
		INSERT INTO users (email, password, user_type, name, lastname, phone, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, email, password, user_type, name, lastname, phone, website, created_at, updated_at
	`

	rec, err := scanRecord(r.pool.QueryRow(ctx, insertSQL,
		params.Email,
		params.PasswordHash,
		params.UserType,
		params.Name,
		params.Lastname,
		params.Phone,
		params.Website,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Record{}, ErrDuplicateEmail
		}
		return Record{}, fmt.Errorf("user: create: %w", err)
	}

	return rec, nil
}

// Update applies a partial update built from the whitelisted subset of
// fields.  It reports whether a row was touched.
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
		"UPDATE users SET %s, updated_at = now() WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args),
	)

	tag, err := r.pool.Exec(ctx, updateSQL, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, ErrDuplicateEmail
		}
		return false, fmt.Errorf("user: update: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a user by id and reports whether a row was touched.
func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("user: delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Email,
		&rec.PasswordHash,
		&rec.UserType,
		&rec.Name,
		&rec.Lastname,
		&rec.Phone,
		&rec.Website,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
