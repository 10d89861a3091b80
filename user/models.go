package user

import (
	"time"

	"jobdesk/auth"
)

// Record mirrors the users table.  PasswordHash never leaves the service
// layer; Public() strips it before anything is serialized.
type Record struct {
	ID           int64
	Email        string
	PasswordHash string
	UserType     auth.Role
	Name         string
	Lastname     string
	Phone        *string
	Website      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public is the client-safe projection of a user record.
type Public struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	UserType  auth.Role `json:"userType"`
	Name      string    `json:"name"`
	Lastname  string    `json:"lastname"`
	Phone     *string   `json:"phone,omitempty"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public converts a record to its client-safe projection.
func (r Record) Public() Public {
	return Public{
		ID:        r.ID,
		Email:     r.Email,
		UserType:  r.UserType,
		Name:      r.Name,
		Lastname:  r.Lastname,
		Phone:     r.Phone,
		Website:   r.Website,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateRequest contains registration data supplied by callers.
type CreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"userType" validate:"required,oneof=individual company admin"`
	Name     string `json:"name" validate:"required"`
	Lastname string `json:"lastname" validate:"required"`
	Phone    string `json:"phone"`
	Website  string `json:"website" validate:"omitempty,url"`
}

// UpdateRequest carries a partial update: the target id plus a free-form
// field map.  Only whitelisted columns reach the store.
type UpdateRequest struct {
	ID     int64
	Fields map[string]any
}
