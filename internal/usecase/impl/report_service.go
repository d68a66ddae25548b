package impl

import (
	"context"
	"fmt"
	"time"

	"stocklens/internal/analytics"
	"stocklens/internal/domain/entity"
	domainerrors "stocklens/internal/domain/errors"
	"stocklens/internal/domain/repository"
	"stocklens/internal/report"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownReportType is returned for a report type outside the known set.
var ErrUnknownReportType error = domainerrors.ErrUnknownReportType

// defaultReportWindowDays is the fallback window when no range is given.
const defaultReportWindowDays = 30

type reportService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	now          func() time.Time
}

// NewReportService creates a new report service instance
func NewReportService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	categoryRepo repository.CategoryRepository,
	storeRepo repository.StoreRepository,
) usecase.ReportUsecase {
	return &reportService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		now:          time.Now,
	}
}

// normalizeRange fills missing bounds with the trailing default window.
func (s *reportService) normalizeRange(rng usecase.DateRange) usecase.DateRange {
	now := s.now()
	if rng.End == "" {
		rng.End = now.Format(entity.SaleDateLayout)
	}
	if rng.Start == "" {
		rng.Start = now.AddDate(0, 0, 1-defaultReportWindowDays).Format(entity.SaleDateLayout)
	}

	return rng
}

// Build generates the requested report for a store and date window.
func (s *reportService) Build(ctx context.Context, reportType usecase.ReportType, storeID uuid.UUID, rng usecase.DateRange) (*usecase.ReportBundle, error) {
	rng = s.normalizeRange(rng)

	var (
		products   []*entity.Product
		sales      []*entity.Sale
		categories []*entity.Category
		stores     []*entity.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.ListProducts(gctx, repository.ProductFilter{StoreID: storeID})

		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.ListSales(gctx, repository.SaleFilter{StoreID: storeID})

		return err
	})
	if reportType == usecase.ReportInventory {
		g.Go(func() error {
			var err error
			categories, err = s.categoryRepo.ListCategories(gctx)

			return err
		})
		g.Go(func() error {
			var err error
			stores, err = s.storeRepo.ListStores(gctx)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load report collections: %w", err)
	}

	windowed := analytics.FilterSalesByDateRange(sales, rng.Start, rng.End)
	bundle := &usecase.ReportBundle{Type: reportType, Range: rng}

	switch reportType {
	case usecase.ReportSales:
		bundle.Sales = analytics.DailySalesReport(windowed)
	case usecase.ReportInventory:
		bundle.Inventory = analytics.InventoryReport(products, categories, stores)
	case usecase.ReportProfitability:
		bundle.Profitability = analytics.SalesProfitabilityReport(products, windowed)
	case usecase.ReportFinancial:
		summary := analytics.FinancialSummarize(windowed, products)
		bundle.Financial = &summary
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}

	return bundle, nil
}

// Export renders the requested report as a downloadable CSV file.
func (s *reportService) Export(ctx context.Context, reportType usecase.ReportType, storeID uuid.UUID, rng usecase.DateRange) (*usecase.ExportFile, error) {
	bundle, err := s.Build(ctx, reportType, storeID, rng)
	if err != nil {
		return nil, err
	}

	var content string
	switch reportType {
	case usecase.ReportSales:
		content, err = report.ExportCSV(&bundle.Sales)
	case usecase.ReportInventory:
		content, err = report.ExportCSV(&bundle.Inventory)
	case usecase.ReportProfitability:
		content, err = report.ExportCSV(&bundle.Profitability)
	case usecase.ReportFinancial:
		rows := []analytics.FinancialSummary{*bundle.Financial}
		content, err = report.ExportCSV(&rows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", reportType, err)
	}

	return &usecase.ExportFile{
		Filename:    report.Filename(string(reportType), bundle.Range.Start, bundle.Range.End),
		ContentType: report.ContentType,
		Content:     content,
	}, nil
}
