package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryOutput is the external representation of a category.
type CategoryOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryUsecase defines category registry operations.
type CategoryUsecase interface {
	// List returns all categories in insertion order.
	List(ctx context.Context) ([]*CategoryOutput, error)

	// Create adds a new category. Exact-match name duplicates are rejected.
	Create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error)
}
