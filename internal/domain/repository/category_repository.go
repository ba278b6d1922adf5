package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup key.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// CountProducts counts the products referencing the category.
	CountProducts(ctx context.Context, categoryID int64) (int64, error)

	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
