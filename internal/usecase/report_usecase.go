package usecase

import (
	"context"

	"stocklens/internal/analytics"

	"github.com/google/uuid"
)

// ReportType selects which report to build or export.
type ReportType string

const (
	ReportSales         ReportType = "sales"
	ReportInventory     ReportType = "inventory"
	ReportProfitability ReportType = "profitability"
	ReportFinancial     ReportType = "financial"
)

// DateRange is an inclusive calendar-date window in ISO 8601 form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportBundle carries one generated report. Exactly one of the row slices
// is populated, matching Type.
type ReportBundle struct {
	Type          ReportType                        `json:"type"`
	Range         DateRange                         `json:"range"`
	Sales         []analytics.DailySalesRow         `json:"sales,omitempty"`
	Inventory     []analytics.InventoryRow          `json:"inventory,omitempty"`
	Profitability []analytics.SalesProfitabilityRow `json:"profitability,omitempty"`
	Financial     *analytics.FinancialSummary       `json:"financial,omitempty"`
}

// ExportFile is a rendered report ready for download.
type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

// ReportUsecase defines the interface for report generation use cases
type ReportUsecase interface {
	// Build generates the requested report for a store and date window.
	// A zero storeID means all stores.
	Build(ctx context.Context, reportType ReportType, storeID uuid.UUID, rng DateRange) (*ReportBundle, error)
	// Export renders the requested report as a downloadable CSV file.
	Export(ctx context.Context, reportType ReportType, storeID uuid.UUID, rng DateRange) (*ExportFile, error)
}
