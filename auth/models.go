package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of account types.
type Role string

const (
	RoleIndividual Role = "individual"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
)

// User is the credential record as stored in the users table.  It carries
// the password hash and must never be serialized to clients directly.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	Name         string
	Lastname     string
	Phone        *string
	Website      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claims is the identity snapshot embedded in a session token.  It is a
// point-in-time copy of the credential record: role changes after issuance
// are not reflected until the next login.
type Claims struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"userType"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	jwt.RegisteredClaims
}

// NewClaims builds the public claims for a user, excluding the hash.
func NewClaims(u User) Claims {
	return Claims{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
		Lastname: u.Lastname,
	}
}

// LoginRequest contains user login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult bundles the token and public claims returned after a
// successful login.
type LoginResult struct {
	Token  string
	Claims Claims
}

func isValidRole(role Role) bool {
	switch role {
	case RoleIndividual, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}
