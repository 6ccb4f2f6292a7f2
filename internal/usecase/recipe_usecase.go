package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe. The owner
// and timestamps are system-assigned, never caller-supplied.
type CreateRecipeInput struct {
	Title        string      `json:"title" validate:"required"`
	Description  string      `json:"description" validate:"required"`
	Ingredients  string      `json:"ingredients" validate:"required"`
	Instructions string      `json:"instructions" validate:"required"`
	CategoryIDs  []uuid.UUID `json:"category_ids"`
}

// UpdateRecipeInput carries a partial patch. Nil fields keep their prior
// value; a non-nil CategoryIDs replaces the whole association set.
type UpdateRecipeInput struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Ingredients  *string      `json:"ingredients"`
	Instructions *string      `json:"instructions"`
	CategoryIDs  *[]uuid.UUID `json:"category_ids"`
}

// RecipeOutput is the external representation of a recipe, enriched with
// the author's username and the full category set.
type RecipeOutput struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Ingredients  string            `json:"ingredients"`
	Instructions string            `json:"instructions"`
	OwnerID      uuid.UUID         `json:"user_id"`
	Author       string            `json:"author"`
	Categories   []*CategoryOutput `json:"categories"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// RecipeUsecase defines recipe business operations. Mutations are
// owner-only; reads are public.
type RecipeUsecase interface {
	// Create stores a new recipe owned by ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateRecipeInput) (*RecipeOutput, error)

	// List returns all recipes, or only those owned by ownerID when set.
	List(ctx context.Context, ownerID *uuid.UUID) ([]*RecipeOutput, error)

	// Get returns a single recipe.
	Get(ctx context.Context, id uuid.UUID) (*RecipeOutput, error)

	// Update applies a partial patch on behalf of callerID. The stored
	// updated_at always advances on success, even for a no-op patch.
	Update(ctx context.Context, id, callerID uuid.UUID, input *UpdateRecipeInput) (*RecipeOutput, error)

	// Delete removes the recipe and its associations on behalf of callerID.
	Delete(ctx context.Context, id, callerID uuid.UUID) error
}
