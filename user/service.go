package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost used for every stored password hash.
const bcryptCost = 12

// ErrInvalidRequest signals a payload that failed shape validation.
var ErrInvalidRequest = errors.New("user: invalid request")

// Service handles account management business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// List returns the client-safe projection of every account.
func (s *Service) List(ctx context.Context) ([]Public, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Public, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Public())
	}
	return out, nil
}

// Create registers a new account, hashing the password at cost 12.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Public, error) {
	if err := s.validate.Struct(req); err != nil {
		return Public{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return Public{}, fmt.Errorf("user: hash password: %w", err)
	}

	params := CreateParams{
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		Name:         req.Name,
		Lastname:     req.Lastname,
	}
	if req.Phone != "" {
		params.Phone = &req.Phone
	}
	if req.Website != "" {
		params.Website = &req.Website
	}

	rec, err := s.repo.Create(ctx, params)
	if err != nil {
		return Public{}, err
	}
	return rec.Public(), nil
}

// Update applies a partial update.  A present non-empty password is
// re-hashed; an empty password field is dropped so accounts can never end
// up with a blank hash.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (bool, error) {
	if req.ID == 0 {
		return false, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	if len(req.Fields) == 0 {
		return false, fmt.Errorf("%w: no update data", ErrInvalidRequest)
	}

	if raw, ok := req.Fields["password"]; ok {
		pw, _ := raw.(string)
		if pw == "" {
			delete(req.Fields, "password")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
			if err != nil {
				return false, fmt.Errorf("user: hash password: %w", err)
			}
			req.Fields["password"] = string(hash)
		}
	}
	if len(req.Fields) == 0 {
		return false, fmt.Errorf("%w: no update data", ErrInvalidRequest)
	}

	return s.repo.Update(ctx, req.ID, req.Fields)
}

// Delete removes an account by id.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
