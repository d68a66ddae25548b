package analytics

import (
	"testing"
	"time"

	"stocklens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(entity.SaleDateLayout, value)
	require.NoError(t, err)

	return parsed
}

func TestDailyTrend_BucketsAndOrder(t *testing.T) {
	now := day(t, "2026-08-30")
	sales := []*entity.Sale{
		{SaleDate: day(t, "2026-08-30"), TotalAmount: 100, Profit: 20},
		{SaleDate: day(t, "2026-08-30"), TotalAmount: 50, Profit: 5},
		{SaleDate: day(t, "2026-08-24"), TotalAmount: 10, Profit: 1},
		{SaleDate: day(t, "2026-08-01"), TotalAmount: 999, Profit: 99}, // outside the window
	}

	buckets := DailyTrend(sales, 7, now)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2026-08-24", buckets[0].Date)
	assert.Equal(t, "2026-08-30", buckets[6].Date)

	assert.InDelta(t, 10.0, buckets[0].Revenue, 1e-9)
	assert.InDelta(t, 150.0, buckets[6].Revenue, 1e-9)
	assert.InDelta(t, 25.0, buckets[6].Profit, 1e-9)

	// Empty days are present and zero-valued.
	for i := 1; i < 6; i++ {
		assert.Zero(t, buckets[i].Revenue)
		assert.Zero(t, buckets[i].Profit)
		assert.Zero(t, buckets[i].Margin)
	}
}

func TestDailyTrend_WindowSumMatchesWindowedSales(t *testing.T) {
	now := day(t, "2026-08-30")
	sales := []*entity.Sale{
		{SaleDate: day(t, "2026-08-30"), TotalAmount: 100},
		{SaleDate: day(t, "2026-08-02"), TotalAmount: 40},
		{SaleDate: day(t, "2026-07-31"), TotalAmount: 70}, // one day outside a 30-day window
	}

	buckets := DailyTrend(sales, 30, now)

	require.Len(t, buckets, 30)
	var total float64
	for _, bucket := range buckets {
		total += bucket.Revenue
	}
	assert.InDelta(t, 140.0, total, 1e-9)
}

func TestDailyTrend_Margin(t *testing.T) {
	now := day(t, "2026-08-30")
	sales := []*entity.Sale{
		{SaleDate: day(t, "2026-08-30"), TotalAmount: 200, Profit: 50},
	}

	buckets := DailyTrend(sales, 7, now)

	assert.InDelta(t, 25.0, buckets[6].Margin, 1e-9)
}

func TestDailyTrend_EmptyInput(t *testing.T) {
	buckets := DailyTrend(nil, 7, day(t, "2026-08-30"))

	require.Len(t, buckets, 7)
	for _, bucket := range buckets {
		assert.Zero(t, bucket.Revenue)
		assert.Zero(t, bucket.Profit)
	}
}

func TestDailyTrend_NonPositiveDays(t *testing.T) {
	assert.Empty(t, DailyTrend(nil, 0, day(t, "2026-08-30")))
}
