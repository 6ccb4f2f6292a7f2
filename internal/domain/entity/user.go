// Package entity contains the core domain objects of the application.
// Entities are persistence-agnostic; GORM models live in the infra layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is never exposed
// through any external representation; the delivery layer maps users to
// summary DTOs instead of serializing this struct directly.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
