package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	mockRepo "stocklens/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(entity.SaleDateLayout, value)
	require.NoError(t, err)

	return func() time.Time { return parsed }
}

func TestDashboardService_Overview(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockSaleRepo := mockRepo.NewMockSaleRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := &dashboardService{
		productRepo:  mockProductRepo,
		saleRepo:     mockSaleRepo,
		categoryRepo: mockCategoryRepo,
		now:          fixedClock(t, "2026-08-30"),
	}

	storeID := uuid.New()
	categoryID := uuid.New()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Widget", CategoryID: categoryID, CostPrice: 10, Quantity: 4, ReorderLevel: 5},
	}
	saleDate, err := time.Parse(entity.SaleDateLayout, "2026-08-30")
	require.NoError(t, err)
	sales := []*entity.Sale{
		{ProductID: products[0].ID, Quantity: 2, TotalAmount: 50, Profit: 20, SaleDate: saleDate},
	}
	categories := []*entity.Category{{ID: categoryID, Name: "Tools"}}

	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, repository.ProductFilter{StoreID: storeID}).
		Return(products, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return(sales, nil)
	mockCategoryRepo.EXPECT().
		ListCategories(mock.Anything).
		Return(categories, nil)

	overview, err := service.Overview(context.Background(), storeID, 0)
	require.NoError(t, err)

	// An unsupported window falls back to 7 days.
	assert.Equal(t, 7, overview.TrendDays)
	assert.Len(t, overview.Trend, 7)
	assert.Equal(t, "2026-08-30", overview.Trend[6].Date)
	assert.InDelta(t, 50.0, overview.Trend[6].Revenue, 1e-9)

	assert.Equal(t, 1, overview.Summary.TotalProducts)
	assert.InDelta(t, 40.0, overview.Summary.TotalInventoryValue, 1e-9)
	assert.Equal(t, 1, overview.Summary.LowStockCount)
	assert.InDelta(t, 20.0, overview.Summary.TotalProfit, 1e-9)

	require.Len(t, overview.Categories, 1)
	assert.Equal(t, "Tools", overview.Categories[0].Name)
	require.Len(t, overview.TopProducts, 1)
	assert.Equal(t, storeID, overview.SelectedStore)
}

func TestDashboardService_Overview_AllTimeSalesFeedSummary(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockSaleRepo := mockRepo.NewMockSaleRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := &dashboardService{
		productRepo:  mockProductRepo,
		saleRepo:     mockSaleRepo,
		categoryRepo: mockCategoryRepo,
		now:          fixedClock(t, "2026-08-30"),
	}

	product := &entity.Product{ID: uuid.New(), Name: "Widget"}
	oldDate, err := time.Parse(entity.SaleDateLayout, "2026-01-15")
	require.NoError(t, err)
	recentDate, err := time.Parse(entity.SaleDateLayout, "2026-08-30")
	require.NoError(t, err)
	sales := []*entity.Sale{
		{ProductID: product.ID, Quantity: 3, TotalAmount: 300, Profit: 120, SaleDate: oldDate},
		{ProductID: product.ID, Quantity: 1, TotalAmount: 50, Profit: 20, SaleDate: recentDate},
	}

	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return([]*entity.Product{product}, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Run(func(ctx context.Context, filter repository.SaleFilter) {
			// Sales are not date-windowed; the trend alone is bounded.
			assert.True(t, filter.From.IsZero())
			assert.True(t, filter.To.IsZero())
		}).
		Return(sales, nil)
	mockCategoryRepo.EXPECT().
		ListCategories(mock.Anything).
		Return(nil, nil)

	overview, err := service.Overview(context.Background(), uuid.Nil, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, overview.TrendDays)
	assert.Len(t, overview.Trend, 30)

	// Total profit and the ranking include the January sale.
	assert.InDelta(t, 140.0, overview.Summary.TotalProfit, 1e-9)
	require.Len(t, overview.TopProducts, 1)
	assert.Equal(t, 4, overview.TopProducts[0].QuantitySold)
	assert.InDelta(t, 350.0, overview.TopProducts[0].Revenue, 1e-9)

	// The trend still only carries the in-window sale.
	assert.InDelta(t, 50.0, overview.Trend[29].Revenue, 1e-9)
	var trendRevenue float64
	for _, bucket := range overview.Trend {
		trendRevenue += bucket.Revenue
	}
	assert.InDelta(t, 50.0, trendRevenue, 1e-9)
}

func TestDashboardService_Overview_LoadFailure(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockSaleRepo := mockRepo.NewMockSaleRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := &dashboardService{
		productRepo:  mockProductRepo,
		saleRepo:     mockSaleRepo,
		categoryRepo: mockCategoryRepo,
		now:          fixedClock(t, "2026-08-30"),
	}

	loadErr := errors.New("connection refused")
	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, nil).
		Maybe()
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return(nil, loadErr)
	mockCategoryRepo.EXPECT().
		ListCategories(mock.Anything).
		Return(nil, nil).
		Maybe()

	overview, err := service.Overview(context.Background(), uuid.Nil, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
	assert.Nil(t, overview)
}
