package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product with its category preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Preload("Category").First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// ListAll returns every product with its category preloaded.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Preload("Category"))
}

// ListByCategoryID returns the products filed under the given category.
func (repo *productRepository) ListByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("category_id = ?", categoryID))
}

// SearchByName returns products whose name contains the substring, case-insensitively.
func (repo *productRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%"))
}

// FindByPriceRange returns products priced between min and max inclusive.
func (repo *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("price BETWEEN ? AND ?", minPrice, maxPrice))
}

// FindLowStock returns products with quantity strictly below the threshold.
func (repo *productRepository) FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("quantity < ?", threshold))
}

// FindOutOfStock returns products with quantity zero.
func (repo *productRepository) FindOutOfStock(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("quantity = 0"))
}

// FindPremiumStock returns in-stock products whose per-unit price exceeds the given value.
func (repo *productRepository) FindPremiumStock(ctx context.Context, price float64) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("quantity > 0 AND price / quantity > ?", price))
}

// CountInStock counts products with quantity above zero.
func (repo *productRepository) CountInStock(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("quantity > 0").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products in stock")
	}

	return count, nil
}

// TotalInventoryValue sums price*quantity over all products.
func (repo *productRepository) TotalInventoryValue(ctx context.Context) (float64, error) {
	var total float64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum inventory value")
	}

	return total, nil
}

// Create persists a new product and fills in its generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references unknown category")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update persists changes to an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// ExistsByID reports whether a product with the ID exists.
func (repo *productRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count products by id")
	}

	return count > 0, nil
}

func (repo *productRepository) list(_ context.Context, tx *gorm.DB) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := tx.Order("id").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		CategoryID: data.CategoryID,
	}
	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		CategoryID: data.CategoryID,
	}
}
