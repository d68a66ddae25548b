package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"stocklens/internal/domain/entity"
	mockRepo "stocklens/internal/mocks/repository"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportServiceForTest(t *testing.T) (*reportService, *mockRepo.MockProductRepository, *mockRepo.MockSaleRepository, *mockRepo.MockCategoryRepository, *mockRepo.MockStoreRepository) {
	t.Helper()
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockSaleRepo := mockRepo.NewMockSaleRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	mockStoreRepo := mockRepo.NewMockStoreRepository(t)

	service := &reportService{
		productRepo:  mockProductRepo,
		saleRepo:     mockSaleRepo,
		categoryRepo: mockCategoryRepo,
		storeRepo:    mockStoreRepo,
		now:          fixedClock(t, "2026-08-30"),
	}

	return service, mockProductRepo, mockSaleRepo, mockCategoryRepo, mockStoreRepo
}

func saleOn(t *testing.T, date string, productID uuid.UUID, quantity int, total, profit float64) *entity.Sale {
	t.Helper()
	parsed, err := time.Parse(entity.SaleDateLayout, date)
	require.NoError(t, err)

	return &entity.Sale{ProductID: productID, Quantity: quantity, TotalAmount: total, Profit: profit, SaleDate: parsed}
}

func TestReportService_Build_Sales(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, _, _ := newReportServiceForTest(t)

	productID := uuid.New()
	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return([]*entity.Sale{
			saleOn(t, "2026-08-10", productID, 2, 50, 10),
			saleOn(t, "2026-07-01", productID, 1, 99, 9), // outside the window
		}, nil)

	bundle, err := service.Build(context.Background(), usecase.ReportSales, uuid.Nil, usecase.DateRange{
		Start: "2026-08-01", End: "2026-08-30",
	})
	require.NoError(t, err)

	assert.Equal(t, usecase.ReportSales, bundle.Type)
	require.Len(t, bundle.Sales, 1)
	assert.Equal(t, "2026-08-10", bundle.Sales[0].Date)
	assert.InDelta(t, 50.0, bundle.Sales[0].TotalSales, 1e-9)
}

func TestReportService_Build_DefaultsRangeToTrailing30Days(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, _, _ := newReportServiceForTest(t)

	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return(nil, nil)

	bundle, err := service.Build(context.Background(), usecase.ReportSales, uuid.Nil, usecase.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", bundle.Range.Start)
	assert.Equal(t, "2026-08-30", bundle.Range.End)
}

func TestReportService_Build_Inventory(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, mockCategoryRepo, mockStoreRepo := newReportServiceForTest(t)

	categoryID := uuid.New()
	storeID := uuid.New()
	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return([]*entity.Product{
			{Name: "Widget", SKU: "W1", CategoryID: categoryID, StoreID: storeID, Quantity: 2, CostPrice: 5},
		}, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return(nil, nil)
	mockCategoryRepo.EXPECT().
		ListCategories(mock.Anything).
		Return([]*entity.Category{{ID: categoryID, Name: "Tools"}}, nil)
	mockStoreRepo.EXPECT().
		ListStores(mock.Anything).
		Return([]*entity.Store{{ID: storeID, Name: "Main"}}, nil)

	bundle, err := service.Build(context.Background(), usecase.ReportInventory, uuid.Nil, usecase.DateRange{})
	require.NoError(t, err)
	require.Len(t, bundle.Inventory, 1)
	assert.Equal(t, "Tools", bundle.Inventory[0].CategoryName)
	assert.Equal(t, "Main", bundle.Inventory[0].StoreName)
}

func TestReportService_Build_UnknownType(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, _, _ := newReportServiceForTest(t)

	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return(nil, nil)

	_, err := service.Build(context.Background(), usecase.ReportType("bogus"), uuid.Nil, usecase.DateRange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReportType)
}

func TestReportService_Export(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, _, _ := newReportServiceForTest(t)

	productID := uuid.New()
	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return(nil, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return([]*entity.Sale{saleOn(t, "2026-08-10", productID, 2, 50, 10)}, nil)

	file, err := service.Export(context.Background(), usecase.ReportSales, uuid.Nil, usecase.DateRange{
		Start: "2026-08-01", End: "2026-08-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "sales_report_2026-08-01_to_2026-08-30.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	lines := strings.Split(strings.TrimRight(file.Content, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,total_sales,total_profit,items_sold,transactions", lines[0])
}

func TestReportService_Export_Financial(t *testing.T) {
	service, mockProductRepo, mockSaleRepo, _, _ := newReportServiceForTest(t)

	product := &entity.Product{ID: uuid.New(), CostPrice: 10}
	mockProductRepo.EXPECT().
		ListProducts(mock.Anything, mock.AnythingOfType("repository.ProductFilter")).
		Return([]*entity.Product{product}, nil)
	mockSaleRepo.EXPECT().
		ListSales(mock.Anything, mock.AnythingOfType("repository.SaleFilter")).
		Return([]*entity.Sale{saleOn(t, "2026-08-10", product.ID, 2, 50, 10)}, nil)

	file, err := service.Export(context.Background(), usecase.ReportFinancial, uuid.Nil, usecase.DateRange{})
	require.NoError(t, err)
	assert.Contains(t, file.Content, "total_sales,total_cost,gross_profit,net_profit,profit_margin")
	assert.Contains(t, file.Content, "50,20,30,30,60")
}
