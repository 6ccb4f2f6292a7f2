package repository

import (
	"context"

	"cookbook/internal/domain/entity"
	"cookbook/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is the sentinel returned when a category lookup matches nothing.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository persists the category reference set.
type CategoryRepository interface {
	// Create persists a new category and fills in generated fields.
	Create(ctx context.Context, category *entity.Category) error

	// FindAll returns every category in insertion order (created_at ascending).
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByName retrieves a category by exact name match.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindByIDs returns the categories whose IDs appear in the given set.
	// Unknown IDs are simply absent from the result; the caller decides
	// whether that is an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)
}
