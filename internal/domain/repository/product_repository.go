// Package repository defines the interfaces for the persistence layer.
//
// The interfaces form the data access facade the reporting engine reads
// through: equality filters are carried as filter structs whose zero-valued
// fields are not applied, and every row crossing the boundary is a typed
// entity rather than a loose record.
package repository

import (
	"context"

	"stocklens/internal/domain/entity"
	"stocklens/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when a product with the same SKU already exists in the store.
	ErrDuplicateSKU = errors.New("product SKU already exists in store")
)

// ProductFilter narrows product listings. Zero-valued fields are ignored.
type ProductFilter struct {
	StoreID    uuid.UUID
	CategoryID uuid.UUID
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name         *string
	SKU          *string
	CategoryID   *uuid.UUID
	CostPrice    *float64
	SellingPrice *float64
	Quantity     *int
	ReorderLevel *int
	Description  *string
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// ListProducts retrieves all products matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// CreateProduct persists a new product and fills in generated values.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct applies a partial update and returns the updated product.
	UpdateProduct(ctx context.Context, id uuid.UUID, update ProductUpdate) (*entity.Product, error)
}
