package impl

import (
	"context"
	"testing"

	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	mockRepo "stocklens/internal/mocks/repository"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_ListProducts(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(importConfigForTest(uuid.New()), mockProductRepo)

	ctx := context.Background()
	filter := repository.ProductFilter{StoreID: uuid.New()}
	expected := []*entity.Product{{ID: uuid.New(), Name: "Widget"}}

	mockProductRepo.EXPECT().
		ListProducts(ctx, filter).
		Return(expected, nil)

	products, err := svc.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	defaultCategoryID := uuid.New()
	svc := NewProductService(importConfigForTest(defaultCategoryID), mockProductRepo)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:         "Widget",
		SKU:          "W1",
		StoreID:      uuid.New(),
		CostPrice:    5,
		SellingPrice: 10,
		Quantity:     20,
		ReorderLevel: 4,
	}

	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Widget", product.Name)
	// A missing category falls back to the configured placeholder.
	assert.Equal(t, defaultCategoryID, product.CategoryID)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestProductService_CreateProduct_DuplicateSKU(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(importConfigForTest(uuid.New()), mockProductRepo)

	ctx := context.Background()
	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateSKU)

	_, err := svc.CreateProduct(ctx, &usecase.CreateProductInput{Name: "Widget", SKU: "W1", StoreID: uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDuplicateSKU)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(importConfigForTest(uuid.New()), mockProductRepo)

	ctx := context.Background()
	productID := uuid.New()
	newPrice := 12.5
	newCategoryID := uuid.New()
	updated := &entity.Product{ID: productID, Name: "Widget", CategoryID: newCategoryID, SellingPrice: newPrice}

	mockProductRepo.EXPECT().
		UpdateProduct(ctx, productID, mock.AnythingOfType("repository.ProductUpdate")).
		Run(func(ctx context.Context, id uuid.UUID, update repository.ProductUpdate) {
			require.NotNil(t, update.SellingPrice)
			assert.InDelta(t, newPrice, *update.SellingPrice, 1e-9)
			require.NotNil(t, update.CategoryID)
			assert.Equal(t, newCategoryID, *update.CategoryID)
			assert.Nil(t, update.Name)
		}).
		Return(updated, nil)

	product, err := svc.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
		SellingPrice: &newPrice,
		CategoryID:   &newCategoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, product)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	svc := NewProductService(importConfigForTest(uuid.New()), mockProductRepo)

	ctx := context.Background()
	mockProductRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("repository.ProductUpdate")).
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.UpdateProduct(ctx, uuid.New(), &usecase.UpdateProductInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
