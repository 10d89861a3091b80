package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest signals a payload that failed shape validation.
var ErrInvalidRequest = errors.New("application: invalid request")

// Service handles application business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates an application service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns all applications.
func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}

// ListByAd returns the applications for one posting.
func (s *Service) ListByAd(ctx context.Context, adID int64) ([]Application, error) {
	if adID == 0 {
		return nil, fmt.Errorf("%w: ad_id is required", ErrInvalidRequest)
	}
	return s.repo.ListByAd(ctx, adID)
}

// Create validates and inserts an application.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Application, error) {
	if err := s.validate.Struct(req); err != nil {
		return Application{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
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

// Delete removes an application by id.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
