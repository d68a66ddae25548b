// Package analytics is the reporting and profitability aggregation engine.
//
// Every function is a pure, stateless transformation over snapshots of
// products, sales, and categories supplied by the caller; inputs are never
// mutated and empty inputs yield zero-valued aggregates rather than errors.
// Referential integrity is not validated: a sale referencing a product
// outside the supplied snapshot simply contributes zero cost.
package analytics

import (
	"sort"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// Summary holds the headline dashboard metrics.
//
// TotalProfit sums the profit stored on each sale record. The profitability
// analysis recomputes profit from product cost instead; see
// SummarizeProfitability. The two paths are intentionally separate.
type Summary struct {
	TotalProducts       int     `json:"total_products"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
	LowStockCount       int     `json:"low_stock_count"`
	TotalProfit         float64 `json:"total_profit"`
}

// Summarize computes the dashboard headline metrics from a product and sale
// snapshot.
func Summarize(products []*entity.Product, sales []*entity.Sale) Summary {
	summary := Summary{TotalProducts: len(products)}

	for _, product := range products {
		summary.TotalInventoryValue += product.CostPrice * float64(product.Quantity)
		if product.Quantity <= product.ReorderLevel {
			summary.LowStockCount++
		}
	}

	for _, sale := range sales {
		summary.TotalProfit += sale.Profit
	}

	return summary
}

// CategorySlice is one slice of the inventory-by-category distribution.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// CategoryDistribution sums product quantity per category, in category input
// order. Categories with zero total quantity are dropped, as are products
// whose category is not in the snapshot; there is no "unknown" bucket.
func CategoryDistribution(products []*entity.Product, categories []*entity.Category) []CategorySlice {
	totals := make(map[uuid.UUID]int, len(categories))
	known := make(map[uuid.UUID]bool, len(categories))
	for _, category := range categories {
		known[category.ID] = true
	}

	for _, product := range products {
		if known[product.CategoryID] {
			totals[product.CategoryID] += product.Quantity
		}
	}

	slices := make([]CategorySlice, 0, len(categories))
	for _, category := range categories {
		if totals[category.ID] == 0 {
			continue
		}
		slices = append(slices, CategorySlice{
			Name:  category.Name,
			Value: totals[category.ID],
			Color: category.DisplayColor(),
		})
	}

	return slices
}

// ProductSales is a product merged with its sales performance.
type ProductSales struct {
	Product      *entity.Product `json:"product"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      float64         `json:"revenue"`
}

// TopProductsByRevenue merges per-product sold quantity and revenue onto
// every product (zero when a product has no sales), sorts descending by
// revenue, and returns the first limit entries. Ties keep input order.
func TopProductsByRevenue(products []*entity.Product, sales []*entity.Sale, limit int) []ProductSales {
	type tally struct {
		quantity int
		revenue  float64
	}
	tallies := make(map[uuid.UUID]tally, len(products))
	for _, sale := range sales {
		t := tallies[sale.ProductID]
		t.quantity += sale.Quantity
		t.revenue += sale.TotalAmount
		tallies[sale.ProductID] = t
	}

	ranked := make([]ProductSales, 0, len(products))
	for _, product := range products {
		t := tallies[product.ID]
		ranked = append(ranked, ProductSales{
			Product:      product,
			QuantitySold: t.quantity,
			Revenue:      t.revenue,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
