package postgres

import (
	"context"

	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	"stocklens/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// ListSales retrieves all sales matching the filter.
func (repo *saleRepository) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := repo.db.WithContext(ctx).Model(&model.SaleModel{})
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	if !filter.From.IsZero() {
		query = query.Where("sale_date >= ?", filter.From.Format(entity.SaleDateLayout))
	}
	if !filter.To.IsZero() {
		query = query.Where("sale_date <= ?", filter.To.Format(entity.SaleDateLayout))
	}

	var saleModels []*model.SaleModel
	if err := query.Order("sale_date ASC").Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, saleM.ToDomain())
	}

	return sales, nil
}
