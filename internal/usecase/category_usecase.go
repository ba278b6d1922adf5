package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// CategoryInput defines the data accepted when creating or updating a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryUsecase defines the interface for category-related business operations.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
