package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cookbook/config"
	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager              repository.TransactionManager
	recipeRepo             repository.RecipeRepository
	allowUnknownCategories bool
	logger                 *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	allowUnknownCategories := false
	if params.Config != nil && params.Config.Recipes != nil {
		allowUnknownCategories = params.Config.Recipes.AllowUnknownCategories
	}

	return &recipeService{
		txManager:              params.TxManager,
		recipeRepo:             params.RecipeRepo,
		allowUnknownCategories: allowUnknownCategories,
		logger:                 params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new recipe owned by ownerID. The recipe row and its
// association rows commit together or not at all.
func (srv *recipeService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*usecase.RecipeOutput, error) {
	if err := validateRecipeFields(input); err != nil {
		return nil, err
	}

	var created *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		categories, err := srv.resolveCategories(ctx, repoFactory.CategoryRepo(), input.CategoryIDs)
		if err != nil {
			return err
		}

		newRecipe := &entity.Recipe{
			Title:        input.Title,
			Description:  input.Description,
			Ingredients:  input.Ingredients,
			Instructions: input.Instructions,
			OwnerID:      ownerID,
			Categories:   categories,
		}

		if err := recipeRepo.Create(ctx, newRecipe); err != nil {
			return errors.Wrap(err, "failed to create recipe")
		}

		// Reload inside the same transaction to pick up the author name
		// and the ordered category set.
		created, err = recipeRepo.FindByID(ctx, newRecipe.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload created recipe")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Recipe creation failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe creation transaction")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", created.ID), slog.Any("ownerID", ownerID))

	return toRecipeOutput(created), nil
}

// List returns all recipes, or only those owned by ownerID when set.
func (srv *recipeService) List(ctx context.Context, ownerID *uuid.UUID) ([]*usecase.RecipeOutput, error) {
	var (
		recipes []*entity.Recipe
		err     error
	)

	// Read-only - use the direct repository instance.
	if ownerID != nil {
		recipes, err = srv.recipeRepo.FindByOwnerID(ctx, *ownerID)
	} else {
		recipes, err = srv.recipeRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	outputs := make([]*usecase.RecipeOutput, 0, len(recipes))
	for _, recipe := range recipes {
		outputs = append(outputs, toRecipeOutput(recipe))
	}

	return outputs, nil
}

// Get returns a single recipe with author and categories.
func (srv *recipeService) Get(ctx context.Context, id uuid.UUID) (*usecase.RecipeOutput, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe lookup failed")
		}

		return nil, errors.Wrap(err, "failed to get recipe")
	}

	return toRecipeOutput(recipe), nil
}

// Update applies a partial patch. The ownership check, the association
// replacement, and the column update share one transaction, so a concurrent
// read never observes a half-applied patch.
func (srv *recipeService) Update(ctx context.Context, id, callerID uuid.UUID, input *usecase.UpdateRecipeInput) (*usecase.RecipeOutput, error) {
	// An absent request body arrives as a nil input; it is a valid empty
	// patch and still advances updated_at.
	if input == nil {
		input = &usecase.UpdateRecipeInput{}
	}

	fields, err := buildRecipePatch(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Recipe
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		current, err := recipeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe update failed")
			}

			return errors.Wrap(err, "failed to load recipe for update")
		}

		if !current.OwnedBy(callerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "recipe update rejected")
		}

		if input.CategoryIDs != nil {
			categories, err := srv.resolveCategories(ctx, repoFactory.CategoryRepo(), *input.CategoryIDs)
			if err != nil {
				return err
			}

			if err := recipeRepo.ReplaceCategories(ctx, id, categories); err != nil {
				return errors.Wrap(err, "failed to replace recipe categories")
			}
		}

		// updated_at always advances, even on a no-op patch.
		if err := recipeRepo.UpdateFields(ctx, id, fields); err != nil {
			return errors.Wrap(err, "failed to update recipe fields")
		}

		updated, err = recipeRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated recipe")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Recipe update failed", slog.Any("recipeID", id), slog.Any("callerID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute recipe update transaction")
	}

	srv.log(ctx).Debug("Recipe updated", slog.Any("recipeID", id))

	return toRecipeOutput(updated), nil
}

// Delete removes the recipe and its association rows atomically.
func (srv *recipeService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		current, err := recipeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe delete failed")
			}

			return errors.Wrap(err, "failed to load recipe for delete")
		}

		if !current.OwnedBy(callerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "recipe delete rejected")
		}

		if err := recipeRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete recipe")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Recipe delete failed", slog.Any("recipeID", id), slog.Any("callerID", callerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute recipe delete transaction")
	}

	srv.log(ctx).Debug("Recipe deleted", slog.Any("recipeID", id))

	return nil
}

// resolveCategories maps category IDs to entities. Unknown IDs are rejected
// unless the configuration opts into silently ignoring them.
func (srv *recipeService) resolveCategories(ctx context.Context, categoryRepo repository.CategoryRepository, ids []uuid.UUID) ([]*entity.Category, error) {
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	categories, err := categoryRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve categories")
	}

	if !srv.allowUnknownCategories && len(categories) != len(unique) {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("one or more category ids do not exist"),
			"category resolution rejected",
		)
	}

	return categories, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}

func validateRecipeFields(input *usecase.CreateRecipeInput) error {
	required := map[string]string{
		"title":        input.Title,
		"description":  input.Description,
		"ingredients":  input.Ingredients,
		"instructions": input.Instructions,
	}

	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails(field+" is required"),
				"recipe validation failed",
			)
		}
	}

	return nil
}

// buildRecipePatch converts the partial update input into a column map.
// The updated_at column is always present so the timestamp advances on
// every successful update.
func buildRecipePatch(input *usecase.UpdateRecipeInput) (map[string]any, error) {
	fields := map[string]any{
		"updated_at": time.Now().UTC(),
	}

	textFields := map[string]*string{
		"title":        input.Title,
		"description":  input.Description,
		"ingredients":  input.Ingredients,
		"instructions": input.Instructions,
	}

	for column, value := range textFields {
		if value == nil {
			continue
		}
		if strings.TrimSpace(*value) == "" {
			return nil, errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails(column+" must not be empty"),
				"recipe validation failed",
			)
		}
		fields[column] = *value
	}

	return fields, nil
}

// toRecipeOutput maps an entity to its external representation.
func toRecipeOutput(recipe *entity.Recipe) *usecase.RecipeOutput {
	if recipe == nil {
		return nil
	}

	categories := make([]*usecase.CategoryOutput, 0, len(recipe.Categories))
	for _, category := range recipe.Categories {
		categories = append(categories, toCategoryOutput(category))
	}

	return &usecase.RecipeOutput{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		OwnerID:      recipe.OwnerID,
		Author:       recipe.Author,
		Categories:   categories,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}
