package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cookbook/config"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	mockRepo "cookbook/internal/mocks/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	txManager  *mockRepo.MockTransactionManager
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Recipes: &config.RecipesConfig{AllowUnknownCategories: false},
	}

	service := NewRecipeService(RecipeServiceParams{
		TxManager:  txManager,
		RecipeRepo: recipeRepo,
		Config:     cfg,
		Logger:     logger,
	})

	return recipeServiceFixtures{
		service:    service,
		txManager:  txManager,
		recipeRepo: recipeRepo,
	}
}

func validCreateRecipeInput(categoryIDs ...uuid.UUID) *usecase.CreateRecipeInput {
	return &usecase.CreateRecipeInput{
		Title:        "Shakshuka",
		Description:  "Eggs poached in spiced tomato sauce",
		Ingredients:  "eggs, tomatoes, peppers, cumin",
		Instructions: "Simmer the sauce, crack in the eggs, cover.",
		CategoryIDs:  categoryIDs,
	}
}

func TestRecipeService_Create_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	category := &entity.Category{ID: uuid.New(), Name: "Breakfast"}
	input := validCreateRecipeInput(category.ID)

	recipeID := uuid.New()
	reloaded := &entity.Recipe{
		ID:           recipeID,
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		OwnerID:      ownerID,
		Author:       "alice",
		Categories:   []*entity.Category{category},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{category.ID}).
				Return([]*entity.Category{category}, nil)

			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = recipeID
				}).
				Return(nil)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(reloaded, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, recipeID, output.ID)
	assert.Equal(t, "alice", output.Author)
	require.Len(t, output.Categories, 1)
	assert.Equal(t, category.Name, output.Categories[0].Name)
}

func TestRecipeService_Create_MissingField(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	input := validCreateRecipeInput()
	input.Title = "   "

	output, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_Create_UnknownCategory(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	unknownID := uuid.New()
	input := validCreateRecipeInput(unknownID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{unknownID}).
				Return([]*entity.Category{}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_Get_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipe := &entity.Recipe{
		ID:     uuid.New(),
		Title:  "Shakshuka",
		Author: "alice",
	}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil)

	output, err := fx.service.Get(ctx, recipe.ID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, recipe.Title, output.Title)
}

func TestRecipeService_Get_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	output, err := fx.service.Get(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_List_All(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipes := []*entity.Recipe{
		{ID: uuid.New(), Title: "Second", Author: "bob"},
		{ID: uuid.New(), Title: "First", Author: "alice"},
	}

	fx.recipeRepo.EXPECT().FindAll(ctx).Return(recipes, nil)

	outputs, err := fx.service.List(ctx, nil)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Second", outputs[0].Title)
}

func TestRecipeService_List_ByOwner(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipes := []*entity.Recipe{
		{ID: uuid.New(), Title: "Mine", OwnerID: ownerID, Author: "alice"},
	}

	fx.recipeRepo.EXPECT().FindByOwnerID(ctx, ownerID).Return(recipes, nil)

	outputs, err := fx.service.List(ctx, &ownerID)

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, ownerID, outputs[0].OwnerID)
}

func TestRecipeService_Update_PartialPatch(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	newTitle := "Shakshuka v2"

	current := &entity.Recipe{ID: recipeID, Title: "Shakshuka", OwnerID: ownerID}
	updated := &entity.Recipe{ID: recipeID, Title: newTitle, OwnerID: ownerID, Author: "alice", UpdatedAt: time.Now()}

	input := &usecase.UpdateRecipeInput{Title: &newTitle}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil).
				Once()

			mockRecipeRepo.EXPECT().
				UpdateFields(ctx, recipeID, mock.MatchedBy(func(fields map[string]interface{}) bool {
					_, hasUpdatedAt := fields["updated_at"]

					return hasUpdatedAt && fields["title"] == newTitle
				})).
				Return(nil)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(updated, nil).
				Once()

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, newTitle, output.Title)
}

func TestRecipeService_Update_EmptyPatchStillTouchesTimestamp(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()

	current := &entity.Recipe{ID: recipeID, Title: "Shakshuka", OwnerID: ownerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			mockRecipeRepo.EXPECT().
				UpdateFields(ctx, recipeID, mock.MatchedBy(func(fields map[string]interface{}) bool {
					_, hasUpdatedAt := fields["updated_at"]

					return hasUpdatedAt && len(fields) == 1
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, ownerID, &usecase.UpdateRecipeInput{})

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestRecipeService_Update_NilPatchTreatedAsEmpty(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()

	current := &entity.Recipe{ID: recipeID, Title: "Shakshuka", OwnerID: ownerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			mockRecipeRepo.EXPECT().
				UpdateFields(ctx, recipeID, mock.MatchedBy(func(fields map[string]interface{}) bool {
					_, hasUpdatedAt := fields["updated_at"]

					return hasUpdatedAt && len(fields) == 1
				})).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, ownerID, nil)

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestRecipeService_Update_ReplacesCategories(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	category := &entity.Category{ID: uuid.New(), Name: "Dinner"}

	current := &entity.Recipe{ID: recipeID, Title: "Shakshuka", OwnerID: ownerID}
	categoryIDs := []uuid.UUID{category.ID}
	input := &usecase.UpdateRecipeInput{CategoryIDs: &categoryIDs}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			mockCategoryRepo.EXPECT().
				FindByIDs(ctx, categoryIDs).
				Return([]*entity.Category{category}, nil)

			mockRecipeRepo.EXPECT().
				ReplaceCategories(ctx, recipeID, []*entity.Category{category}).
				Return(nil)

			mockRecipeRepo.EXPECT().
				UpdateFields(ctx, recipeID, mock.AnythingOfType("map[string]interface {}")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(nil, repository.ErrRecipeNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, uuid.New(), &usecase.UpdateRecipeInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_Update_Forbidden(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	current := &entity.Recipe{ID: recipeID, Title: "Shakshuka", OwnerID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, recipeID, uuid.New(), &usecase.UpdateRecipeInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRecipeService_Update_EmptyFieldRejected(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	blank := "   "

	output, err := fx.service.Update(ctx, uuid.New(), uuid.New(), &usecase.UpdateRecipeInput{Title: &blank})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_Delete_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	current := &entity.Recipe{ID: recipeID, OwnerID: ownerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			mockRecipeRepo.EXPECT().
				Delete(ctx, recipeID).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, recipeID, ownerID)

	require.NoError(t, err)
}

func TestRecipeService_Delete_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(nil, repository.ErrRecipeNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, recipeID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_Delete_Forbidden(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()
	current := &entity.Recipe{ID: recipeID, OwnerID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(current, nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, recipeID, uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
