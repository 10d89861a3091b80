package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest signals a payload that failed shape validation.
var ErrInvalidRequest = errors.New("job: invalid request")

// Service handles posting business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a posting service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all postings.
func (s *Service) List(ctx context.Context) ([]Posting, error) {
	return s.repo.List(ctx)
}

// Get retrieves one posting by id.
func (s *Service) Get(ctx context.Context, id int64) (Posting, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and inserts a posting.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Posting, error) {
	if err := s.validate.Struct(req); err != nil {
		return Posting{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.MinSalary != nil && req.MaxSalary != nil && *req.MaxSalary < *req.MinSalary {
		return Posting{}, fmt.Errorf("%w: max salary below min salary", ErrInvalidRequest)
	}
	return s.repo.Create(ctx, req)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (bool, error) {
	if req.ID == 0 {
		return false, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	if len(req.Fields) == 0 {
		return false, fmt.Errorf("%w: no update data", ErrInvalidRequest)
	}
	return s.repo.Update(ctx, req.ID, req.Fields)
}

// Delete removes a posting by id.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
