package repository

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/errors"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is the sentinel returned when a recipe lookup matches nothing.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository persists recipes and their category associations.
// Reads are join-enriched: returned recipes carry the owner's username and
// the full category set.
type RecipeRepository interface {
	// Create persists a new recipe together with its category associations
	// and fills in generated fields (ID, timestamps).
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a single recipe with author and categories.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// FindAll returns all recipes with author and categories, newest first.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindByOwnerID returns the recipes owned by the given user, newest first.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error)

	// UpdateFields applies a partial column update to the recipe row. The
	// caller is responsible for including an updated_at value so the
	// timestamp advances even on a no-op patch.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error

	// ReplaceCategories atomically swaps the recipe's category association
	// set for the given one. An empty slice clears all associations.
	ReplaceCategories(ctx context.Context, id uuid.UUID, categories []*entity.Category) error

	// Delete removes the recipe row and all its category associations.
	Delete(ctx context.Context, id uuid.UUID) error
}
