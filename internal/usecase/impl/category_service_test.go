package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       logger,
	})

	return categoryServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestCategoryService_List(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: uuid.New(), Name: "Breakfast", Description: "Morning meals and brunch recipes"},
		{ID: uuid.New(), Name: "Lunch", Description: "Midday meals and light dishes"},
	}

	fx.categoryRepo.EXPECT().FindAll(ctx).Return(categories, nil)

	outputs, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "Breakfast", outputs[0].Name)
	assert.Equal(t, "Lunch", outputs[1].Name)
}

func TestCategoryService_Create_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{
		Name:        "  Fermented  ",
		Description: "Pickles, krauts, and friends",
	}

	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByName(ctx, "Fermented").
				Return(nil, repository.ErrCategoryNotFound)

			mockCategoryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Category")).
				Run(func(ctx context.Context, category *entity.Category) {
					category.ID = categoryID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, categoryID, output.ID)
	// Leading and trailing whitespace is stripped before persisting.
	assert.Equal(t, "Fermented", output.Name)
	assert.Equal(t, input.Description, output.Description)
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCategoryInput{Name: "Breakfast"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FindByName(ctx, "Breakfast").
				Return(&entity.Category{ID: uuid.New(), Name: "Breakfast"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCategory))
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	output, err := fx.service.Create(ctx, &usecase.CreateCategoryInput{Name: "   "})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
