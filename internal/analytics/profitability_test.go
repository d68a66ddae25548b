package analytics

import (
	"testing"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeProfitability(t *testing.T) {
	winner := &entity.Product{ID: uuid.New(), Name: "winner", CostPrice: 10}
	loser := &entity.Product{ID: uuid.New(), Name: "loser", CostPrice: 50}
	idle := &entity.Product{ID: uuid.New(), Name: "idle", CostPrice: 5}

	sales := []*entity.Sale{
		{ProductID: winner.ID, Quantity: 2, TotalAmount: 100}, // cost 20, profit 80
		{ProductID: loser.ID, Quantity: 1, TotalAmount: 40},   // cost 50, profit -10
		{ProductID: uuid.New(), Quantity: 3, TotalAmount: 60}, // unmatched: revenue only, zero cost
	}

	summary := SummarizeProfitability([]*entity.Product{winner, loser, idle}, sales)

	assert.InDelta(t, 200.0, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 70.0, summary.TotalCost, 1e-9)
	assert.InDelta(t, 130.0, summary.TotalProfit, 1e-9)
	assert.InDelta(t, 65.0, summary.AverageMargin, 1e-9)

	require.NotNil(t, summary.TopPerformer)
	require.NotNil(t, summary.WorstPerformer)
	assert.Equal(t, "winner", summary.TopPerformer.Name)
	assert.InDelta(t, 80.0, summary.TopPerformer.Profit, 1e-9)
	assert.Equal(t, "loser", summary.WorstPerformer.Name)
	assert.InDelta(t, -10.0, summary.WorstPerformer.Profit, 1e-9)
}

func TestSummarizeProfitability_SingleQualifierIsTopAndWorst(t *testing.T) {
	only := &entity.Product{ID: uuid.New(), Name: "only", CostPrice: 1}
	sales := []*entity.Sale{{ProductID: only.ID, Quantity: 1, TotalAmount: 10}}

	summary := SummarizeProfitability([]*entity.Product{only}, sales)

	require.NotNil(t, summary.TopPerformer)
	require.NotNil(t, summary.WorstPerformer)
	assert.Equal(t, summary.TopPerformer, summary.WorstPerformer)
}

func TestSummarizeProfitability_Empty(t *testing.T) {
	summary := SummarizeProfitability(nil, nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageMargin)
	assert.Nil(t, summary.TopPerformer)
	assert.Nil(t, summary.WorstPerformer)
}

func TestProductProfitability(t *testing.T) {
	sold := &entity.Product{ID: uuid.New(), Name: "sold", CostPrice: 5, SellingPrice: 12, Quantity: 4}
	stocked := &entity.Product{ID: uuid.New(), Name: "stocked", CostPrice: 3, SellingPrice: 9, Quantity: 10}
	ghost := &entity.Product{ID: uuid.New(), Name: "ghost", Quantity: 0}

	sales := []*entity.Sale{
		{ProductID: sold.ID, Quantity: 2, TotalAmount: 24},
		{ProductID: sold.ID, Quantity: 1, TotalAmount: 12},
	}

	rows := ProductProfitability([]*entity.Product{sold, stocked, ghost}, sales)

	// ghost has no revenue and no stock, so it is excluded.
	require.Len(t, rows, 2)

	soldRow := rows[0]
	assert.Equal(t, "sold", soldRow.Product.Name)
	assert.Equal(t, 3, soldRow.QuantitySold)
	assert.InDelta(t, 36.0, soldRow.Revenue, 1e-9)
	assert.InDelta(t, 15.0, soldRow.Cost, 1e-9)
	assert.InDelta(t, 21.0, soldRow.Profit, 1e-9)
	assert.InDelta(t, 7.0, soldRow.ProfitPerUnit, 1e-9)
	assert.InDelta(t, 20.0, soldRow.InventoryValue, 1e-9)
	assert.InDelta(t, 28.0, soldRow.PotentialProfit, 1e-9)

	// A product with stock but no sales still appears, fully zero-guarded.
	stockedRow := rows[1]
	assert.Equal(t, "stocked", stockedRow.Product.Name)
	assert.Zero(t, stockedRow.Revenue)
	assert.Zero(t, stockedRow.Margin)
	assert.Zero(t, stockedRow.ProfitPerUnit)
}

func TestCategoryProfitability(t *testing.T) {
	c1 := &entity.Category{ID: uuid.New(), Name: "selling"}
	c2 := &entity.Category{ID: uuid.New(), Name: "quiet"}

	p1 := &entity.Product{ID: uuid.New(), CategoryID: c1.ID, CostPrice: 5}
	p2 := &entity.Product{ID: uuid.New(), CategoryID: c1.ID, CostPrice: 2}
	p3 := &entity.Product{ID: uuid.New(), CategoryID: c2.ID, CostPrice: 1}

	sales := []*entity.Sale{
		{ProductID: p1.ID, Quantity: 2, TotalAmount: 30}, // cost 10
		{ProductID: p2.ID, Quantity: 5, TotalAmount: 20}, // cost 10
	}

	rows := CategoryProfitability([]*entity.Product{p1, p2, p3}, sales, []*entity.Category{c1, c2})

	// quiet has no revenue and is dropped.
	require.Len(t, rows, 1)
	assert.Equal(t, "selling", rows[0].Category.Name)
	assert.InDelta(t, 50.0, rows[0].Revenue, 1e-9)
	assert.InDelta(t, 20.0, rows[0].Cost, 1e-9)
	assert.InDelta(t, 30.0, rows[0].Profit, 1e-9)
	assert.InDelta(t, 60.0, rows[0].Margin, 1e-9)
	assert.Equal(t, 2, rows[0].Products)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByProfit, ParseSortKey(""))
	assert.Equal(t, SortByProfit, ParseSortKey("bogus"))
	assert.Equal(t, SortByMargin, ParseSortKey("margin"))
	assert.Equal(t, SortByRevenue, ParseSortKey("revenue"))
	assert.Equal(t, SortByQuantitySold, ParseSortKey("quantity_sold"))
	assert.Equal(t, SortByQuantitySold, ParseSortKey("quantity"))
}

func TestSortProducts(t *testing.T) {
	rows := []ProductProfit{
		{Profit: 10, Margin: 50, Revenue: 20, QuantitySold: 1},
		{Profit: 30, Margin: 10, Revenue: 300, QuantitySold: 9},
		{Profit: 20, Margin: 90, Revenue: 25, QuantitySold: 4},
	}

	SortProducts(rows, SortByProfit)
	assert.InDelta(t, 30.0, rows[0].Profit, 1e-9)

	SortProducts(rows, SortByMargin)
	assert.InDelta(t, 90.0, rows[0].Margin, 1e-9)

	SortProducts(rows, SortByRevenue)
	assert.InDelta(t, 300.0, rows[0].Revenue, 1e-9)

	SortProducts(rows, SortByQuantitySold)
	assert.Equal(t, 9, rows[0].QuantitySold)
}
