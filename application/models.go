package application

import "time"

// Application mirrors the apply table.  The cv column stores an opaque
// reference to an uploaded document; upload handling itself lives outside
// this service.
type Application struct {
	ID          int64     `json:"id"`
	AdID        int64     `json:"ad_id"`
	CompanyName string    `json:"company_name"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Motivations string    `json:"motivations"`
	Website     *string   `json:"website,omitempty"`
	CV          *string   `json:"cv,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRequest contains application data supplied by candidates.
type CreateRequest struct {
	AdID        int64   `json:"ad_id" validate:"required"`
	CompanyName string  `json:"company_name" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Lastname    string  `json:"lastname" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Motivations string  `json:"motivations" validate:"required"`
	Website     *string `json:"website" validate:"omitempty,url"`
	CV          *string `json:"cv"`
}

// UpdateRequest carries a partial update for an application.
type UpdateRequest struct {
	ID     int64
	Fields map[string]any
}
