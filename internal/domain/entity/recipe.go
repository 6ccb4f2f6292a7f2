package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the central domain object. OwnerID is set at creation and
// immutable; only the owner may mutate or delete the recipe.
type Recipe struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Ingredients  string
	Instructions string

	// OwnerID references the creating user. Author carries the owner's
	// username when the recipe was loaded with its join data.
	OwnerID uuid.UUID
	Author  string

	Categories []*Category

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the given user owns this recipe.
func (r *Recipe) OwnedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}
