package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest signals a payload that failed shape validation.
var ErrInvalidRequest = errors.New("company: invalid request")

// Service handles company business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a company service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all companies.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

// Options returns the id/name pairs used by form selects.
func (s *Service) Options(ctx context.Context) ([]Option, error) {
	return s.repo.Options(ctx)
}

// Create normalizes the comma-separated email list and inserts the company.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Company, error) {
	if err := s.validate.Struct(req); err != nil {
		return Company{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	emails := splitEmails(req.Emails)
	if len(emails) == 0 {
		return Company{}, fmt.Errorf("%w: at least one email is required", ErrInvalidRequest)
	}

	return s.repo.Create(ctx, req.Name, emails)
}

// Update applies a partial update.  An emails field given as a string is
// normalized into an array before it reaches the store.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (bool, error) {
	if req.ID == 0 {
		return false, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	if len(req.Fields) == 0 {
		return false, fmt.Errorf("%w: no update data", ErrInvalidRequest)
	}

	if raw, ok := req.Fields["emails"].(string); ok {
		req.Fields["emails"] = splitEmails(raw)
	}

	return s.repo.Update(ctx, req.ID, req.Fields)
}

// Delete removes a company by id.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func splitEmails(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
