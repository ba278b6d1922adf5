package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup key.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for products, including
// the stock reporting queries.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	ListByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	// SearchByName returns products whose name contains the given substring,
	// case-insensitively.
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)

	// FindByPriceRange returns products with price between min and max inclusive.
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error)

	// FindLowStock returns products with quantity strictly below the threshold.
	FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)

	// FindOutOfStock returns products with quantity zero.
	FindOutOfStock(ctx context.Context) ([]*entity.Product, error)

	// FindPremiumStock returns in-stock products whose per-unit price exceeds
	// the given value.
	FindPremiumStock(ctx context.Context, price float64) ([]*entity.Product, error)

	// CountInStock counts products with quantity above zero.
	CountInStock(ctx context.Context) (int64, error)

	// TotalInventoryValue sums price*quantity over all products.
	TotalInventoryValue(ctx context.Context) (float64, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
