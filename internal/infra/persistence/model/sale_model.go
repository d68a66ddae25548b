package model

import (
	"time"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleModel is the GORM-specific struct for the 'sales' table.
type SaleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
	TotalAmount float64   `gorm:"type:decimal(12,2);not null"`
	Profit      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	SaleDate    time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the model to a domain entity.
func (m *SaleModel) ToDomain() *entity.Sale {
	return &entity.Sale{
		ID:          m.ID,
		ProductID:   m.ProductID,
		StoreID:     m.StoreID,
		Quantity:    m.Quantity,
		TotalAmount: m.TotalAmount,
		Profit:      m.Profit,
		SaleDate:    m.SaleDate,
	}
}

// FromSaleDomain converts a domain entity to the model.
func FromSaleDomain(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:          sale.ID,
		ProductID:   sale.ProductID,
		StoreID:     sale.StoreID,
		Quantity:    sale.Quantity,
		TotalAmount: sale.TotalAmount,
		Profit:      sale.Profit,
		SaleDate:    sale.SaleDate,
	}
}
