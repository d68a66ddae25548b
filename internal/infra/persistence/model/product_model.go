package model

import (
	"time"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	SKU          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_products_store_sku"`
	CategoryID   uuid.UUID `gorm:"type:uuid;index"`
	StoreID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_products_store_sku;index"`
	CostPrice    float64   `gorm:"type:decimal(12,2);not null;default:0"`
	SellingPrice float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Quantity     int       `gorm:"not null;default:0"`
	ReorderLevel int       `gorm:"not null;default:10"`
	Description  string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the model to a domain entity.
func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		Name:         m.Name,
		SKU:          m.SKU,
		CategoryID:   m.CategoryID,
		StoreID:      m.StoreID,
		CostPrice:    m.CostPrice,
		SellingPrice: m.SellingPrice,
		Quantity:     m.Quantity,
		ReorderLevel: m.ReorderLevel,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromProductDomain converts a domain entity to the model.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:           product.ID,
		Name:         product.Name,
		SKU:          product.SKU,
		CategoryID:   product.CategoryID,
		StoreID:      product.StoreID,
		CostPrice:    product.CostPrice,
		SellingPrice: product.SellingPrice,
		Quantity:     product.Quantity,
		ReorderLevel: product.ReorderLevel,
		Description:  product.Description,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
