package usecase

import (
	"context"

	"stocklens/internal/analytics"

	"github.com/google/uuid"
)

// ProfitabilityAnalysis bundles the profitability view: headline figures plus
// per-product and per-category breakdowns for a date window.
type ProfitabilityAnalysis struct {
	Summary    analytics.ProfitSummary    `json:"summary"`
	Products   []analytics.ProductProfit  `json:"products"`
	Categories []analytics.CategoryProfit `json:"categories"`
	Trend      []analytics.TrendBucket    `json:"trend"`
	Days       int                        `json:"days"`
	SortKey    analytics.SortKey          `json:"sort_key"`
}

// ProfitabilityUsecase defines the interface for profitability analysis use cases
type ProfitabilityUsecase interface {
	// Analyze computes profitability over the trailing window of days ending
	// today. A zero storeID means all stores; products are sorted by sortKey
	// descending.
	Analyze(ctx context.Context, storeID uuid.UUID, days int, sortKey analytics.SortKey) (*ProfitabilityAnalysis, error)
}
