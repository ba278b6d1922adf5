package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minCategoryNameLength = 2

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
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

// CreateCategory validates and persists a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	var created *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		taken, err := categoryRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return errors.Wrap(err, "failed to check category name uniqueness")
		}
		if taken {
			return domainerrors.ErrCategoryNameTaken
		}

		newCategory := &entity.Category{
			Name:        input.Name,
			Description: input.Description,
		}
		if err := categoryRepo.Create(ctx, newCategory); err != nil {
			return errors.WithStack(err)
		}
		created = newCategory

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category creation transaction")
	}

	return created, nil
}

// GetCategory retrieves a single category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// ListCategories returns every category.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateCategory validates and persists changes to an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Updating category", slog.Int64("categoryID", id))

	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find category")
		}

		// The category name is immutable once set.
		if input.Name != category.Name {
			return domainerrors.NewValidationError("category name cannot be changed")
		}

		category.Description = input.Description

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.WithStack(err)
		}
		updated = category

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update category", slog.Int64("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}

	return updated, nil
}

// DeleteCategory removes a category, refusing while products still reference it.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting category", slog.Int64("categoryID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		exists, err := categoryRepo.ExistsByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check category existence")
		}
		if !exists {
			return domainerrors.ErrCategoryNotFound
		}

		productCount, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count products in category")
		}
		if productCount > 0 {
			return domainerrors.ErrCategoryInUse
		}

		return errors.WithStack(categoryRepo.Delete(ctx, id))
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute category deletion transaction")
	}

	return nil
}

// validateCategoryInput enforces the category field rules.
func validateCategoryInput(input *usecase.CategoryInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.NewValidationError("category name is required")
	}
	if len(strings.TrimSpace(input.Name)) < minCategoryNameLength {
		return domainerrors.NewValidationError("category name should be minimum 2 characters long")
	}

	return nil
}
