// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserSummary is the external representation of a user account. It never
// carries the password hash.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginOutput returns the session token and user summary after a successful login.
type LoginOutput struct {
	Token string
	User  *UserSummary
}

// AuthStatus reports the identity bound to a session token, if any.
type AuthStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserSummary `json:"user,omitempty"`
}

// AccountUsecase defines the account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Signup registers a new account. Duplicate username/email, a password
	// shorter than the configured minimum, and an email without '@' are
	// rejected, in that order.
	Signup(ctx context.Context, input *SignupInput) (*UserSummary, error)

	// Login authenticates the credentials and starts a session. Failures
	// are undifferentiated to avoid user enumeration.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CheckAuth resolves a session token to its user. An invalid token
	// yields an unauthenticated status, not an error.
	CheckAuth(ctx context.Context, token string) (*AuthStatus, error)

	// Logout ends the session. Idempotent.
	Logout(ctx context.Context, token string) error
}
