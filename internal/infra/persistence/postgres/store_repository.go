package postgres

import (
	"context"

	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	"stocklens/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// ListStores retrieves all stores. Order is stable so the first store is a
// deterministic import fallback.
func (repo *storeRepository) ListStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, storeM.ToDomain())
	}

	return stores, nil
}
