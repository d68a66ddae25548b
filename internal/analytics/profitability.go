package analytics

import (
	"sort"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductPerformance identifies a best or worst performing product in a
// profitability summary.
type ProductPerformance struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SKU     string    `json:"sku"`
	Revenue float64   `json:"revenue"`
	Profit  float64   `json:"profit"`
	Margin  float64   `json:"margin"`
}

// ProfitSummary holds the aggregate profitability of a date-windowed sale set.
//
// Unlike Summary.TotalProfit, TotalProfit here is recomputed as revenue minus
// the matched product's cost basis; sales whose product is not in the
// snapshot contribute zero cost.
type ProfitSummary struct {
	TotalRevenue   float64             `json:"total_revenue"`
	TotalCost      float64             `json:"total_cost"`
	TotalProfit    float64             `json:"total_profit"`
	AverageMargin  float64             `json:"average_margin"`
	TopPerformer   *ProductPerformance `json:"top_performer"`
	WorstPerformer *ProductPerformance `json:"worst_performer"`
}

// SummarizeProfitability computes windowed revenue, recomputed cost and
// profit, the revenue-weighted average margin, and the top and worst
// performers among products with revenue. With a single qualifying product it
// is both top and worst performer.
func SummarizeProfitability(products []*entity.Product, sales []*entity.Sale) ProfitSummary {
	byProduct := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byProduct[product.ID] = product
	}

	var summary ProfitSummary
	for _, sale := range sales {
		summary.TotalRevenue += sale.TotalAmount
		if product, ok := byProduct[sale.ProductID]; ok {
			summary.TotalCost += product.CostPrice * float64(sale.Quantity)
		}
	}
	summary.TotalProfit = summary.TotalRevenue - summary.TotalCost
	if summary.TotalRevenue > 0 {
		summary.AverageMargin = summary.TotalProfit / summary.TotalRevenue * 100
	}

	var top, worst *ProductPerformance
	for _, product := range products {
		var revenue, cost float64
		for _, sale := range sales {
			if sale.ProductID != product.ID {
				continue
			}
			revenue += sale.TotalAmount
			cost += product.CostPrice * float64(sale.Quantity)
		}
		if revenue <= 0 {
			continue
		}

		perf := &ProductPerformance{
			ID:      product.ID,
			Name:    product.Name,
			SKU:     product.SKU,
			Revenue: revenue,
			Profit:  revenue - cost,
		}
		perf.Margin = perf.Profit / revenue * 100

		if top == nil || perf.Profit > top.Profit {
			top = perf
		}
		if worst == nil || perf.Profit < worst.Profit {
			worst = perf
		}
	}
	summary.TopPerformer = top
	summary.WorstPerformer = worst

	return summary
}

// ProductProfit is the per-product profitability row.
type ProductProfit struct {
	Product         *entity.Product `json:"product"`
	QuantitySold    int             `json:"quantity_sold"`
	Revenue         float64         `json:"revenue"`
	Cost            float64         `json:"cost"`
	Profit          float64         `json:"profit"`
	Margin          float64         `json:"margin"`
	ProfitPerUnit   float64         `json:"profit_per_unit"`
	InventoryValue  float64         `json:"inventory_value"`
	PotentialProfit float64         `json:"potential_profit"`
}

// ProductProfitability computes a profitability row per product. A product is
// included when it has revenue in the window or stock on hand; margin and
// profit-per-unit are zero-guarded.
func ProductProfitability(products []*entity.Product, sales []*entity.Sale) []ProductProfit {
	rows := make([]ProductProfit, 0, len(products))
	for _, product := range products {
		row := ProductProfit{
			Product:         product,
			InventoryValue:  product.InventoryValue(),
			PotentialProfit: product.PotentialProfit(),
		}
		for _, sale := range sales {
			if sale.ProductID != product.ID {
				continue
			}
			row.Revenue += sale.TotalAmount
			row.QuantitySold += sale.Quantity
		}
		row.Cost = float64(row.QuantitySold) * product.CostPrice
		row.Profit = row.Revenue - row.Cost
		if row.Revenue > 0 {
			row.Margin = row.Profit / row.Revenue * 100
		}
		if row.QuantitySold > 0 {
			row.ProfitPerUnit = row.Profit / float64(row.QuantitySold)
		}

		if row.Revenue > 0 || product.Quantity > 0 {
			rows = append(rows, row)
		}
	}

	return rows
}

// CategoryProfit is the per-category profitability rollup.
type CategoryProfit struct {
	Category *entity.Category `json:"category"`
	Revenue  float64          `json:"revenue"`
	Cost     float64          `json:"cost"`
	Profit   float64          `json:"profit"`
	Margin   float64          `json:"margin"`
	Products int              `json:"products"`
}

// CategoryProfitability rolls the per-product aggregation up by category, in
// category input order. Categories without revenue in the window are dropped;
// products with an unknown category are ignored.
func CategoryProfitability(products []*entity.Product, sales []*entity.Sale, categories []*entity.Category) []CategoryProfit {
	rollups := make(map[uuid.UUID]*CategoryProfit, len(categories))
	for _, category := range categories {
		rollups[category.ID] = &CategoryProfit{Category: category}
	}

	for _, product := range products {
		rollup, ok := rollups[product.CategoryID]
		if !ok {
			continue
		}
		var revenue float64
		var quantitySold int
		for _, sale := range sales {
			if sale.ProductID != product.ID {
				continue
			}
			revenue += sale.TotalAmount
			quantitySold += sale.Quantity
		}
		cost := float64(quantitySold) * product.CostPrice

		rollup.Revenue += revenue
		rollup.Cost += cost
		rollup.Profit += revenue - cost
		rollup.Products++
	}

	rows := make([]CategoryProfit, 0, len(categories))
	for _, category := range categories {
		rollup := rollups[category.ID]
		if rollup.Revenue <= 0 {
			continue
		}
		rollup.Margin = rollup.Profit / rollup.Revenue * 100
		rows = append(rows, *rollup)
	}

	return rows
}

// SortKey selects the ranking column for profitability rows.
type SortKey string

// Supported profitability sort keys; sorting is always descending.
const (
	SortByProfit       SortKey = "profit"
	SortByMargin       SortKey = "margin"
	SortByRevenue      SortKey = "revenue"
	SortByQuantitySold SortKey = "quantity_sold"
)

// ParseSortKey normalizes a caller-supplied sort key, accepting "quantity" as
// an alias and falling back to profit for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByMargin:
		return SortByMargin
	case SortByRevenue:
		return SortByRevenue
	case SortByQuantitySold, SortKey("quantity"):
		return SortByQuantitySold
	default:
		return SortByProfit
	}
}

// SortProducts orders profitability rows descending by the given key, stable
// on ties.
func SortProducts(rows []ProductProfit, key SortKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		switch key {
		case SortByMargin:
			return rows[i].Margin > rows[j].Margin
		case SortByRevenue:
			return rows[i].Revenue > rows[j].Revenue
		case SortByQuantitySold:
			return rows[i].QuantitySold > rows[j].QuantitySold
		default:
			return rows[i].Profit > rows[j].Profit
		}
	})
}
