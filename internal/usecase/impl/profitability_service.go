package impl

import (
	"context"
	"fmt"
	"time"

	"stocklens/internal/analytics"
	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type profitabilityService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewProfitabilityService creates a new profitability service instance
func NewProfitabilityService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	categoryRepo repository.CategoryRepository,
) usecase.ProfitabilityUsecase {
	return &profitabilityService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// profitTrendDays fixes the trend length regardless of the analysis window.
const profitTrendDays = 30

// Analyze computes the profitability view over the trailing window of days
// ending today. Unsupported windows fall back to 30 days.
func (s *profitabilityService) Analyze(ctx context.Context, storeID uuid.UUID, days int, sortKey analytics.SortKey) (*usecase.ProfitabilityAnalysis, error) {
	switch days {
	case 7, 30, 90, 365:
	default:
		days = 30
	}
	windowStart := s.now().AddDate(0, 0, 1-days)

	var (
		products   []*entity.Product
		sales      []*entity.Sale
		categories []*entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.ListProducts(gctx, repository.ProductFilter{StoreID: storeID})

		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.ListSales(gctx, repository.SaleFilter{StoreID: storeID, From: windowStart})

		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListCategories(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load profitability collections: %w", err)
	}

	rows := analytics.ProductProfitability(products, sales)
	analytics.SortProducts(rows, sortKey)

	return &usecase.ProfitabilityAnalysis{
		Summary:    analytics.SummarizeProfitability(products, sales),
		Products:   rows,
		Categories: analytics.CategoryProfitability(products, sales, categories),
		Trend:      analytics.DailyTrend(sales, profitTrendDays, s.now()),
		Days:       days,
		SortKey:    sortKey,
	}, nil
}
