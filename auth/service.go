package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials signals wrong email or password.  Unknown
	// accounts and wrong passwords deliberately share this sentinel so
	// callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidRequest signals a malformed login payload, caught before
	// any store access.
	ErrInvalidRequest = errors.New("auth: invalid request")
)

// Service handles the login/session lifecycle.
type Service struct {
	repo     Repository
	codec    *Codec
	validate *validator.Validate
}

// NewService creates an authentication service around a credential
// repository and a token codec.
func NewService(repo Repository, codec *Codec) *Service {
	return &Service{
		repo:     repo,
		codec:    codec,
		validate: validator.New(),
	}
}

// Login authenticates a user and mints a session token.  Input shape is
// checked before the store is touched; a record miss and a password
// mismatch produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return LoginResult{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := NewClaims(user)
	token, err := s.codec.Sign(claims)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: sign token: %w", err)
	}

	return LoginResult{Token: token, Claims: claims}, nil
}

// SessionFromRequest extracts and verifies the session cookie.  It returns
// nil when the cookie is absent or the token fails verification; a missing
// session is not an error.
func (s *Service) SessionFromRequest(r *http.Request) *Claims {
	token, ok := TokenFromRequest(r)
	if !ok {
		return nil
	}
	return s.codec.Verify(token)
}
