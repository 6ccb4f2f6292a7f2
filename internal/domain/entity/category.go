package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named label recipes can be tagged with. Names are unique
// (exact byte match). Categories are created once and never deleted.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
