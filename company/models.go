package company

import "time"

// Company mirrors the company table.  Emails is stored as a JSON array in
// the database; the create endpoint accepts a comma-separated string and
// normalizes it.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Emails    []string  `json:"emails"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRequest contains company data supplied by callers.
type CreateRequest struct {
	Name   string `json:"name" validate:"required"`
	Emails string `json:"emails" validate:"required"`
}

// UpdateRequest carries a partial update for a company.
type UpdateRequest struct {
	ID     int64
	Fields map[string]any
}

// Option is the minimal projection used to fill form selects.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
