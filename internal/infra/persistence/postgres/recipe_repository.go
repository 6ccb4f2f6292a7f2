package postgres

import (
	"context"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// Create persists a new recipe together with its category associations.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference on recipe insert")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	if len(recipe.Categories) > 0 {
		categoryRefs := categoryModelRefs(recipe.Categories)

		// Omit("Categories.*") keeps GORM from upserting category rows;
		// only the join rows are written.
		if err := repo.db.WithContext(ctx).
			Model(recipeM).
			Omit("Categories.*").
			Association("Categories").
			Append(categoryRefs); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to attach recipe categories")
		}
	}

	// Update the entity with generated values
	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByID retrieves a single recipe enriched with its author and categories.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.created_at ASC")
		}).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindAll returns all recipes with author and categories, newest first.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	return repo.findRecipes(ctx, nil)
}

// FindByOwnerID returns the recipes owned by the given user, newest first.
func (repo *recipeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error) {
	return repo.findRecipes(ctx, &ownerID)
}

func (repo *recipeRepository) findRecipes(ctx context.Context, ownerID *uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	query := repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.created_at ASC")
		}).
		Order("created_at DESC")

	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}

	if err := query.Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// UpdateFields applies a partial column update. The caller includes an
// updated_at value so the timestamp advances even on a no-op patch.
func (repo *recipeRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// ReplaceCategories atomically swaps the recipe's category association set.
func (repo *recipeRepository) ReplaceCategories(ctx context.Context, id uuid.UUID, categories []*entity.Category) error {
	recipeM := &model.RecipeModel{ID: id}

	association := repo.db.WithContext(ctx).
		Model(recipeM).
		Omit("Categories.*").
		Association("Categories")

	if len(categories) == 0 {
		if err := association.Clear(); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear recipe categories")
		}

		return nil
	}

	if err := association.Replace(categoryModelRefs(categories)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace recipe categories")
	}

	return nil
}

// Delete removes the recipe and its association rows. Callers wrap this in
// a transaction so the two deletes are atomic.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	recipeM := &model.RecipeModel{ID: id}

	if err := repo.db.WithContext(ctx).
		Model(recipeM).
		Association("Categories").
		Clear(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear recipe categories on delete")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		OwnerID:      data.UserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Owner != nil {
		recipe.Author = data.Owner.Username
	}

	recipe.Categories = make([]*entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		recipe.Categories = append(recipe.Categories, toCategoryDomain(categoryM))
	}

	return recipe
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		UserID:       data.OwnerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// categoryModelRefs builds PK-only category models for association writes.
func categoryModelRefs(categories []*entity.Category) []*model.CategoryModel {
	refs := make([]*model.CategoryModel, 0, len(categories))
	for _, category := range categories {
		refs = append(refs, &model.CategoryModel{ID: category.ID})
	}

	return refs
}
