package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all categories in insertion order.
func (srv *categoryService) List(ctx context.Context) ([]*usecase.CategoryOutput, error) {
	// Single read - use the direct repository instance.
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, toCategoryOutput(category))
	}

	return outputs, nil
}

// Create adds a new category. The duplicate check and the insert share one
// transaction; the unique constraint backstops concurrent creates.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*usecase.CategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "category creation rejected")
	}

	var created *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByName(ctx, name); err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateCategory, "category creation rejected")
		} else if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category uniqueness")
		}

		newCategory := &entity.Category{
			Name:        name,
			Description: input.Description,
		}

		if err := categoryRepo.Create(ctx, newCategory); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		created = newCategory

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Category creation failed", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category creation transaction")
	}

	srv.log(ctx).Debug("Category created", slog.Any("categoryID", created.ID), slog.String("name", created.Name))

	return toCategoryOutput(created), nil
}

// toCategoryOutput maps an entity to its external representation.
func toCategoryOutput(category *entity.Category) *usecase.CategoryOutput {
	if category == nil {
		return nil
	}

	return &usecase.CategoryOutput{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}
