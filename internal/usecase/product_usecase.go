package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// ProductInput defines the data accepted when creating or updating a product.
// CategoryName, when set, files the product under a category of that name,
// creating the category on demand; it takes precedence over CategoryID.
type ProductInput struct {
	Name         string
	Price        float64
	Quantity     int
	CategoryID   *int64
	CategoryName string
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AssignCategory(ctx context.Context, productID, categoryID int64) (*entity.Product, error)

	SearchProducts(ctx context.Context, name string) ([]*entity.Product, error)
	ProductsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error)
	LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error)
	OutOfStockProducts(ctx context.Context) ([]*entity.Product, error)
	PremiumStockProducts(ctx context.Context, price float64) ([]*entity.Product, error)
	CountProductsInStock(ctx context.Context) (int64, error)
	TotalInventoryValue(ctx context.Context) (float64, error)
}
