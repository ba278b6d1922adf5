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

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates and persists a new product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var created *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryID := input.CategoryID

		if input.CategoryName != "" {
			category, err := srv.resolveCategoryByName(ctx, repoFactory.CategoryRepo(), input.CategoryName)
			if err != nil {
				return err
			}
			categoryID = &category.ID
		} else if categoryID != nil {
			exists, err := repoFactory.CategoryRepo().ExistsByID(ctx, *categoryID)
			if err != nil {
				return errors.Wrap(err, "failed to check category existence")
			}
			if !exists {
				return domainerrors.ErrCategoryNotFound
			}
		}

		newProduct := &entity.Product{
			Name:       input.Name,
			Price:      input.Price,
			Quantity:   input.Quantity,
			CategoryID: categoryID,
		}
		if err := repoFactory.ProductRepo().Create(ctx, newProduct); err != nil {
			return errors.WithStack(err)
		}
		created = newProduct

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	return created, nil
}

// GetProduct retrieves a single product by ID.
func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns every product.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListProductsByCategory returns the products inside a category, after
// verifying the category exists.
func (srv *productService) ListProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	exists, err := srv.categoryRepo.ExistsByID(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check category existence")
	}
	if !exists {
		return nil, domainerrors.ErrCategoryNotFound
	}

	products, err := srv.productRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// UpdateProduct validates and persists changes to an existing product.
func (srv *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Int64("productID", id))

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		if input.CategoryID != nil {
			exists, err := repoFactory.CategoryRepo().ExistsByID(ctx, *input.CategoryID)
			if err != nil {
				return errors.Wrap(err, "failed to check category existence")
			}
			if !exists {
				return domainerrors.ErrCategoryNotFound
			}
		}

		product.Name = input.Name
		product.Price = input.Price
		product.Quantity = input.Quantity
		product.CategoryID = input.CategoryID
		product.Category = nil

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.WithStack(err)
		}
		updated = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Int64("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	return updated, nil
}

// DeleteProduct removes a product after confirming it exists.
func (srv *productService) DeleteProduct(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting product", slog.Int64("productID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		exists, err := productRepo.ExistsByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if !exists {
			return domainerrors.ErrProductNotFound
		}

		return errors.WithStack(productRepo.Delete(ctx, id))
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute product deletion transaction")
	}

	return nil
}

// AssignCategory files an existing product under an existing category.
func (srv *productService) AssignCategory(ctx context.Context, productID, categoryID int64) (*entity.Product, error) {
	srv.log(ctx).Info("Assigning product to category",
		slog.Int64("productID", productID), slog.Int64("categoryID", categoryID))

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, productID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find product")
		}

		exists, err := repoFactory.CategoryRepo().ExistsByID(ctx, categoryID)
		if err != nil {
			return errors.Wrap(err, "failed to check category existence")
		}
		if !exists {
			return domainerrors.ErrCategoryNotFound
		}

		product.CategoryID = &categoryID
		product.Category = nil

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.WithStack(err)
		}
		updated = product

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute category assignment transaction")
	}

	return updated, nil
}

// resolveCategoryByName finds the named category, creating it on demand with
// a generated description.
func (srv *productService) resolveCategoryByName(ctx context.Context, categoryRepo repository.CategoryRepository, name string) (*entity.Category, error) {
	category, err := categoryRepo.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to find category by name")
	}

	newCategory := &entity.Category{
		Name:        name,
		Description: name + " category",
	}
	if err := categoryRepo.Create(ctx, newCategory); err != nil {
		return nil, errors.WithStack(err)
	}

	return newCategory, nil
}

// SearchProducts finds products whose name contains the query, case-insensitively.
func (srv *productService) SearchProducts(ctx context.Context, name string) ([]*entity.Product, error) {
	products, err := srv.productRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ProductsInPriceRange returns products priced within the inclusive range.
func (srv *productService) ProductsInPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, domainerrors.NewValidationError("invalid price range")
	}

	products, err := srv.productRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by price range")
	}

	return products, nil
}

// LowStockProducts returns products with quantity below the threshold.
func (srv *productService) LowStockProducts(ctx context.Context, threshold int) ([]*entity.Product, error) {
	if threshold < 0 {
		return nil, domainerrors.NewValidationError("threshold must not be negative")
	}

	products, err := srv.productRepo.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return products, nil
}

// OutOfStockProducts returns products with zero quantity.
func (srv *productService) OutOfStockProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindOutOfStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find out of stock products")
	}

	return products, nil
}

// PremiumStockProducts returns in-stock products whose per-unit price exceeds the given value.
func (srv *productService) PremiumStockProducts(ctx context.Context, price float64) ([]*entity.Product, error) {
	if price < 0 {
		return nil, domainerrors.NewValidationError("price must not be negative")
	}

	products, err := srv.productRepo.FindPremiumStock(ctx, price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find premium stock products")
	}

	return products, nil
}

// CountProductsInStock counts products with quantity above zero.
func (srv *productService) CountProductsInStock(ctx context.Context) (int64, error) {
	count, err := srv.productRepo.CountInStock(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products in stock")
	}

	return count, nil
}

// TotalInventoryValue sums price times quantity over the whole catalog.
func (srv *productService) TotalInventoryValue(ctx context.Context) (float64, error) {
	total, err := srv.productRepo.TotalInventoryValue(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute total inventory value")
	}

	return total, nil
}

// validateProductInput enforces the product field rules and reports the first violation.
func validateProductInput(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.NewValidationError("product name is required")
	}
	if input.Price < 0 {
		return domainerrors.NewValidationError("price must not be negative")
	}
	if input.Quantity < 0 {
		return domainerrors.NewValidationError("quantity must not be negative")
	}

	return nil
}
