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

// topProductsLimit caps the dashboard ranking.
const topProductsLimit = 5

type dashboardService struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	categoryRepo repository.CategoryRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// Overview computes the dashboard aggregates for a store. Sales are fetched
// unwindowed: total profit and the top-products ranking are all-time figures,
// only the trend buckets are bounded to the last trendDays days.
func (s *dashboardService) Overview(ctx context.Context, storeID uuid.UUID, trendDays int) (*usecase.DashboardOverview, error) {
	if trendDays != 30 {
		trendDays = 7
	}
	now := s.now()

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
		sales, err = s.saleRepo.ListSales(gctx, repository.SaleFilter{StoreID: storeID})

		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.ListCategories(gctx)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard collections: %w", err)
	}

	return &usecase.DashboardOverview{
		Summary:       analytics.Summarize(products, sales),
		Trend:         analytics.DailyTrend(sales, trendDays, now),
		Categories:    analytics.CategoryDistribution(products, categories),
		TopProducts:   analytics.TopProductsByRevenue(products, sales, topProductsLimit),
		TrendDays:     trendDays,
		SelectedStore: storeID,
	}, nil
}
