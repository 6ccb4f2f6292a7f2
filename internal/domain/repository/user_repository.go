// Package repository defines the persistence interfaces the domain depends on.
// Concrete implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is the sentinel returned when a user lookup matches nothing.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user accounts. Username and email are each
// globally unique with exact byte-match semantics.
type UserRepository interface {
	// Create persists a new user and fills in generated fields (ID, timestamps).
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by exact username match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
