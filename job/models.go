package job

import "time"

// Position location values accepted by postings.
const (
	PositionOnSite     = "On-Site"
	PositionSemiRemote = "Semi-Remote"
	PositionFullRemote = "Full-Remote"
)

// Posting mirrors the ads table.  JobTypes is stored as a JSON array
// string, matching what posting forms submit.
type Posting struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	JobTypes         string    `json:"jobTypes"`
	MinSalary        *int      `json:"minSalary,omitempty"`
	MaxSalary        *int      `json:"maxSalary,omitempty"`
	Advantages       *string   `json:"advantages,omitempty"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	PositionLocation string    `json:"positionLocation"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateRequest contains posting data supplied by callers.
type CreateRequest struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	JobTypes         string  `json:"jobTypes" validate:"required"`
	MinSalary        *int    `json:"minSalary" validate:"omitempty,min=0"`
	MaxSalary        *int    `json:"maxSalary" validate:"omitempty,min=0"`
	Advantages       *string `json:"advantages"`
	Company          string  `json:"company" validate:"required"`
	Location         string  `json:"location" validate:"required"`
	PositionLocation string  `json:"positionLocation" validate:"required,oneof=On-Site Semi-Remote Full-Remote"`
}

// UpdateRequest carries a partial update for a posting.
type UpdateRequest struct {
	ID     int64
	Fields map[string]any
}
