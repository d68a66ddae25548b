// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"stocklens/internal/domain/entity"
	domainerrors "stocklens/internal/domain/errors"
	"stocklens/internal/domain/repository"
	"stocklens/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// ListProducts retrieves all products matching the filter.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if filter.CategoryID != uuid.Nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var productModels []*model.ProductModel
	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, productM.ToDomain())
	}

	return products, nil
}

// CreateProduct persists a new product and fills in generated values.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := model.FromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("invalid category or store reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct applies a partial update and returns the updated product.
func (repo *productRepository) UpdateProduct(ctx context.Context, id uuid.UUID, update repository.ProductUpdate) (*entity.Product, error) {
	values := buildProductUpdateValues(update)

	if len(values) > 1 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(values)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return nil, repository.ErrDuplicateSKU
			}

			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to reload product")
	}

	return productM.ToDomain(), nil
}

func buildProductUpdateValues(update repository.ProductUpdate) map[string]any {
	values := map[string]any{"updated_at": time.Now()}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.SKU != nil {
		values["sku"] = *update.SKU
	}
	if update.CategoryID != nil {
		values["category_id"] = *update.CategoryID
	}
	if update.CostPrice != nil {
		values["cost_price"] = *update.CostPrice
	}
	if update.SellingPrice != nil {
		values["selling_price"] = *update.SellingPrice
	}
	if update.Quantity != nil {
		values["quantity"] = *update.Quantity
	}
	if update.ReorderLevel != nil {
		values["reorder_level"] = *update.ReorderLevel
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}

	return values
}
