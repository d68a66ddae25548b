package analytics

import (
	"sort"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// DailySalesRow aggregates one calendar day of the sales report. Unlike the
// trend series, only days that actually have sales appear.
type DailySalesRow struct {
	Date         string  `json:"date" csv:"date"`
	TotalSales   float64 `json:"total_sales" csv:"total_sales"`
	TotalProfit  float64 `json:"total_profit" csv:"total_profit"`
	ItemsSold    int     `json:"items_sold" csv:"items_sold"`
	Transactions int     `json:"transactions" csv:"transactions"`
}

// DailySalesReport groups sales by calendar day, ascending by date. Profit is
// the stored per-sale profit.
func DailySalesReport(sales []*entity.Sale) []DailySalesRow {
	byDay := make(map[string]*DailySalesRow)
	for _, sale := range sales {
		day := sale.SaleDay()
		row, ok := byDay[day]
		if !ok {
			row = &DailySalesRow{Date: day}
			byDay[day] = row
		}
		row.TotalSales += sale.TotalAmount
		row.TotalProfit += sale.Profit
		row.ItemsSold += sale.Quantity
		row.Transactions++
	}

	rows := make([]DailySalesRow, 0, len(byDay))
	for _, row := range byDay {
		rows = append(rows, *row)
	}
	// ISO dates sort chronologically as strings.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	return rows
}

// InventoryRow is one product line of the inventory report, with category and
// store names resolved and potential figures derived from the current stock.
type InventoryRow struct {
	Name             string  `json:"name" csv:"name"`
	SKU              string  `json:"sku" csv:"sku"`
	CategoryName     string  `json:"category_name" csv:"category_name"`
	StoreName        string  `json:"store_name" csv:"store_name"`
	Quantity         int     `json:"quantity" csv:"quantity"`
	ReorderLevel     int     `json:"reorder_level" csv:"reorder_level"`
	CostPrice        float64 `json:"cost_price" csv:"cost_price"`
	SellingPrice     float64 `json:"selling_price" csv:"selling_price"`
	InventoryValue   float64 `json:"inventory_value" csv:"inventory_value"`
	PotentialRevenue float64 `json:"potential_revenue" csv:"potential_revenue"`
	PotentialProfit  float64 `json:"potential_profit" csv:"potential_profit"`
	StockStatus      string  `json:"stock_status" csv:"stock_status"`
}

// InventoryReport builds one row per product, in input order. Unresolvable
// category or store references render as "Unknown".
func InventoryReport(products []*entity.Product, categories []*entity.Category, stores []*entity.Store) []InventoryRow {
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}
	storeNames := make(map[uuid.UUID]string, len(stores))
	for _, store := range stores {
		storeNames[store.ID] = store.Name
	}

	rows := make([]InventoryRow, 0, len(products))
	for _, product := range products {
		categoryName, ok := categoryNames[product.CategoryID]
		if !ok {
			categoryName = "Unknown"
		}
		storeName, ok := storeNames[product.StoreID]
		if !ok {
			storeName = "Unknown"
		}

		rows = append(rows, InventoryRow{
			Name:             product.Name,
			SKU:              product.SKU,
			CategoryName:     categoryName,
			StoreName:        storeName,
			Quantity:         product.Quantity,
			ReorderLevel:     product.ReorderLevel,
			CostPrice:        product.CostPrice,
			SellingPrice:     product.SellingPrice,
			InventoryValue:   product.InventoryValue(),
			PotentialRevenue: product.PotentialRevenue(),
			PotentialProfit:  product.PotentialProfit(),
			StockStatus:      string(product.StockStatus()),
		})
	}

	return rows
}

// SalesProfitabilityRow is one product line of the profitability report.
type SalesProfitabilityRow struct {
	Name          string  `json:"name" csv:"name"`
	SKU           string  `json:"sku" csv:"sku"`
	TotalSold     int     `json:"total_sold" csv:"total_sold"`
	TotalRevenue  float64 `json:"total_revenue" csv:"total_revenue"`
	TotalCost     float64 `json:"total_cost" csv:"total_cost"`
	Profit        float64 `json:"profit" csv:"profit"`
	Margin        float64 `json:"margin" csv:"margin"`
	ProfitPerUnit float64 `json:"profit_per_unit" csv:"profit_per_unit"`
}

// SalesProfitabilityReport computes recomputed-profit rows for every product
// that sold in the window, sorted descending by profit.
func SalesProfitabilityReport(products []*entity.Product, sales []*entity.Sale) []SalesProfitabilityRow {
	rows := make([]SalesProfitabilityRow, 0, len(products))
	for _, product := range products {
		var totalSold int
		var totalRevenue float64
		for _, sale := range sales {
			if sale.ProductID != product.ID {
				continue
			}
			totalSold += sale.Quantity
			totalRevenue += sale.TotalAmount
		}
		if totalSold == 0 {
			continue
		}

		totalCost := float64(totalSold) * product.CostPrice
		row := SalesProfitabilityRow{
			Name:         product.Name,
			SKU:          product.SKU,
			TotalSold:    totalSold,
			TotalRevenue: totalRevenue,
			TotalCost:    totalCost,
			Profit:       totalRevenue - totalCost,
		}
		if totalRevenue > 0 {
			row.Margin = row.Profit / totalRevenue * 100
		}
		row.ProfitPerUnit = row.Profit / float64(totalSold)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Profit > rows[j].Profit })

	return rows
}

// FinancialSummary holds the windowed financial headline figures. Net profit
// equals gross profit; operating expenses are not tracked here.
type FinancialSummary struct {
	TotalSales   float64 `json:"total_sales" csv:"total_sales"`
	TotalCost    float64 `json:"total_cost" csv:"total_cost"`
	GrossProfit  float64 `json:"gross_profit" csv:"gross_profit"`
	NetProfit    float64 `json:"net_profit" csv:"net_profit"`
	ProfitMargin float64 `json:"profit_margin" csv:"profit_margin"`
}

// FinancialSummarize computes the windowed financial summary, with cost
// recomputed from matched product cost prices.
func FinancialSummarize(sales []*entity.Sale, products []*entity.Product) FinancialSummary {
	byProduct := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byProduct[product.ID] = product
	}

	var summary FinancialSummary
	for _, sale := range sales {
		summary.TotalSales += sale.TotalAmount
		if product, ok := byProduct[sale.ProductID]; ok {
			summary.TotalCost += product.CostPrice * float64(sale.Quantity)
		}
	}
	summary.GrossProfit = summary.TotalSales - summary.TotalCost
	summary.NetProfit = summary.GrossProfit
	if summary.TotalSales > 0 {
		summary.ProfitMargin = summary.GrossProfit / summary.TotalSales * 100
	}

	return summary
}

// FilterSalesByDateRange keeps sales whose calendar date falls inside the
// inclusive [start, end] window, compared on the date portion only.
func FilterSalesByDateRange(sales []*entity.Sale, start, end string) []*entity.Sale {
	filtered := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		day := sale.SaleDay()
		if day >= start && day <= end {
			filtered = append(filtered, sale)
		}
	}

	return filtered
}
