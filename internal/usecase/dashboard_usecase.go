package usecase

import (
	"context"

	"stocklens/internal/analytics"

	"github.com/google/uuid"
)

// DashboardOverview bundles everything the dashboard view renders for one
// store and trend window.
type DashboardOverview struct {
	Summary       analytics.Summary         `json:"summary"`
	Trend         []analytics.TrendBucket   `json:"trend"`
	Categories    []analytics.CategorySlice `json:"categories"`
	TopProducts   []analytics.ProductSales  `json:"top_products"`
	TrendDays     int                       `json:"trend_days"`
	SelectedStore uuid.UUID                 `json:"selected_store,omitempty"`
}

// DashboardUsecase defines the interface for dashboard overview use cases
type DashboardUsecase interface {
	// Overview computes the dashboard aggregates for a store. A zero storeID
	// means all stores; trendDays is clamped to 7 or 30.
	Overview(ctx context.Context, storeID uuid.UUID, trendDays int) (*DashboardOverview, error)
}
