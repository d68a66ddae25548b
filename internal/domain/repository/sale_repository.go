package repository

import (
	"context"
	"time"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleFilter narrows sale listings. Zero-valued fields are ignored; From and
// To bound the sale date inclusively.
type SaleFilter struct {
	StoreID uuid.UUID
	From    time.Time
	To      time.Time
}

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	// ListSales retrieves all sales matching the filter.
	ListSales(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
