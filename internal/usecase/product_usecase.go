package usecase

import (
	"context"

	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProductInput represents the input for creating a new product
type CreateProductInput struct {
	Name         string    `json:"name" validate:"required"`
	SKU          string    `json:"sku" validate:"required"`
	CategoryID   uuid.UUID `json:"category_id"`
	StoreID      uuid.UUID `json:"store_id" validate:"required"`
	CostPrice    float64   `json:"cost_price" validate:"gte=0"`
	SellingPrice float64   `json:"selling_price" validate:"gte=0"`
	Quantity     int       `json:"quantity" validate:"gte=0"`
	ReorderLevel int       `json:"reorder_level" validate:"gte=0"`
	Description  string    `json:"description"`
}

// UpdateProductInput represents the input for updating an existing product
type UpdateProductInput struct {
	Name         *string    `json:"name,omitempty"`
	SKU          *string    `json:"sku,omitempty"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CostPrice    *float64   `json:"cost_price,omitempty" validate:"omitempty,gte=0"`
	SellingPrice *float64   `json:"selling_price,omitempty" validate:"omitempty,gte=0"`
	Quantity     *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	ReorderLevel *int       `json:"reorder_level,omitempty" validate:"omitempty,gte=0"`
	Description  *string    `json:"description,omitempty"`
}

// ProductUsecase defines the interface for product management use cases
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
}
