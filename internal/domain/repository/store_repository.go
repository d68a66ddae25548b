package repository

import (
	"context"

	"stocklens/internal/domain/entity"
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// ListStores retrieves all stores.
	ListStores(ctx context.Context) ([]*entity.Store, error)
}
