// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus classifies a product's inventory position against its reorder level.
type StockStatus string

const (
	// StockStatusOutOfStock means the product has no units on hand.
	StockStatusOutOfStock StockStatus = "out_of_stock"
	// StockStatusLowStock means the quantity on hand is at or below the reorder level.
	StockStatusLowStock StockStatus = "low_stock"
	// StockStatusInStock means the quantity on hand is above the reorder level.
	StockStatusInStock StockStatus = "in_stock"
)

// Product represents a sellable inventory item belonging to a store.
// Selling and cost price are independently settable; a negative margin is legal.
type Product struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the product.
	Name         string    `json:"name"`          // Display name of the product.
	SKU          string    `json:"sku"`           // Stock keeping unit, unique per store.
	CategoryID   uuid.UUID `json:"category_id"`   // The category this product belongs to.
	StoreID      uuid.UUID `json:"store_id"`      // The store that stocks this product.
	CostPrice    float64   `json:"cost_price"`    // Unit acquisition cost.
	SellingPrice float64   `json:"selling_price"` // Unit selling price.
	Quantity     int       `json:"quantity"`      // Units currently on hand.
	ReorderLevel int       `json:"reorder_level"` // Threshold at or below which the product is flagged for restocking.
	Description  string    `json:"description"`   // Optional free-form description.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the product was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// StockStatusOf classifies an inventory position. Pure function of
// (quantity, reorderLevel).
func StockStatusOf(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOutOfStock
	case quantity <= reorderLevel:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockStatus classifies the product's current inventory position.
func (p *Product) StockStatus() StockStatus {
	return StockStatusOf(p.Quantity, p.ReorderLevel)
}

// InventoryValue is the capital tied up in the on-hand stock (cost basis).
func (p *Product) InventoryValue() float64 {
	return p.CostPrice * float64(p.Quantity)
}

// PotentialRevenue is the revenue obtained if the entire stock sold at the selling price.
func (p *Product) PotentialRevenue() float64 {
	return p.SellingPrice * float64(p.Quantity)
}

// PotentialProfit is the profit obtained if the entire stock sold at the selling price.
func (p *Product) PotentialProfit() float64 {
	return (p.SellingPrice - p.CostPrice) * float64(p.Quantity)
}
