package analytics

import (
	"testing"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySalesReport(t *testing.T) {
	sales := []*entity.Sale{
		{SaleDate: day(t, "2026-08-29"), TotalAmount: 50, Profit: 10, Quantity: 2},
		{SaleDate: day(t, "2026-08-27"), TotalAmount: 30, Profit: 5, Quantity: 1},
		{SaleDate: day(t, "2026-08-29"), TotalAmount: 20, Profit: 4, Quantity: 3},
	}

	rows := DailySalesReport(sales)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-27", rows[0].Date)
	assert.Equal(t, "2026-08-29", rows[1].Date)
	assert.InDelta(t, 70.0, rows[1].TotalSales, 1e-9)
	assert.InDelta(t, 14.0, rows[1].TotalProfit, 1e-9)
	assert.Equal(t, 5, rows[1].ItemsSold)
	assert.Equal(t, 2, rows[1].Transactions)
}

func TestInventoryReport(t *testing.T) {
	category := &entity.Category{ID: uuid.New(), Name: "Peripherals"}
	store := &entity.Store{ID: uuid.New(), Name: "Main"}

	known := &entity.Product{
		Name: "Mouse", SKU: "MOU001",
		CategoryID: category.ID, StoreID: store.ID,
		CostPrice: 15, SellingPrice: 25, Quantity: 50, ReorderLevel: 10,
	}
	orphan := &entity.Product{Name: "Orphan", SKU: "ORP001", Quantity: 0}

	rows := InventoryReport([]*entity.Product{known, orphan}, []*entity.Category{category}, []*entity.Store{store})

	require.Len(t, rows, 2)
	assert.Equal(t, "Peripherals", rows[0].CategoryName)
	assert.Equal(t, "Main", rows[0].StoreName)
	assert.InDelta(t, 750.0, rows[0].InventoryValue, 1e-9)
	assert.InDelta(t, 1250.0, rows[0].PotentialRevenue, 1e-9)
	assert.InDelta(t, 500.0, rows[0].PotentialProfit, 1e-9)
	assert.Equal(t, string(entity.StockStatusInStock), rows[0].StockStatus)

	assert.Equal(t, "Unknown", rows[1].CategoryName)
	assert.Equal(t, "Unknown", rows[1].StoreName)
	assert.Equal(t, string(entity.StockStatusOutOfStock), rows[1].StockStatus)
}

func TestSalesProfitabilityReport(t *testing.T) {
	big := &entity.Product{ID: uuid.New(), Name: "big", CostPrice: 5}
	small := &entity.Product{ID: uuid.New(), Name: "small", CostPrice: 5}
	unsold := &entity.Product{ID: uuid.New(), Name: "unsold", Quantity: 3}

	sales := []*entity.Sale{
		{ProductID: big.ID, Quantity: 10, TotalAmount: 200},  // profit 150
		{ProductID: small.ID, Quantity: 2, TotalAmount: 30},  // profit 20
	}

	rows := SalesProfitabilityReport([]*entity.Product{small, big, unsold}, sales)

	// Only sold products appear, profit descending.
	require.Len(t, rows, 2)
	assert.Equal(t, "big", rows[0].Name)
	assert.InDelta(t, 150.0, rows[0].Profit, 1e-9)
	assert.InDelta(t, 15.0, rows[0].ProfitPerUnit, 1e-9)
	assert.Equal(t, "small", rows[1].Name)
}

func TestFinancialSummarize(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), CostPrice: 10}
	sales := []*entity.Sale{
		{ProductID: product.ID, Quantity: 2, TotalAmount: 50},
		{ProductID: uuid.New(), Quantity: 1, TotalAmount: 50}, // unmatched, zero cost
	}

	summary := FinancialSummarize(sales, []*entity.Product{product})

	assert.InDelta(t, 100.0, summary.TotalSales, 1e-9)
	assert.InDelta(t, 20.0, summary.TotalCost, 1e-9)
	assert.InDelta(t, 80.0, summary.GrossProfit, 1e-9)
	assert.InDelta(t, 80.0, summary.NetProfit, 1e-9)
	assert.InDelta(t, 80.0, summary.ProfitMargin, 1e-9)
}

func TestFinancialSummarize_Empty(t *testing.T) {
	assert.Equal(t, FinancialSummary{}, FinancialSummarize(nil, nil))
}

func TestFilterSalesByDateRange(t *testing.T) {
	sales := []*entity.Sale{
		{SaleDate: day(t, "2026-08-01")},
		{SaleDate: day(t, "2026-08-15")},
		{SaleDate: day(t, "2026-08-31")},
	}

	filtered := FilterSalesByDateRange(sales, "2026-08-01", "2026-08-15")

	require.Len(t, filtered, 2)
	assert.Equal(t, "2026-08-01", filtered[0].SaleDay())
	assert.Equal(t, "2026-08-15", filtered[1].SaleDay())
}
