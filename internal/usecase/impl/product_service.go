package impl

import (
	"context"
	"fmt"
	"time"

	"stocklens/config"
	"stocklens/internal/domain/entity"
	"stocklens/internal/domain/repository"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
)

type productService struct {
	productRepo       repository.ProductRepository
	defaultCategoryID uuid.UUID
}

// NewProductService creates a new product service instance
func NewProductService(cfg *config.Config, productRepo repository.ProductRepository) usecase.ProductUsecase {
	defaultCategoryID, err := uuid.Parse(cfg.Import.DefaultCategoryID)
	if err != nil {
		defaultCategoryID = uuid.Nil
	}

	return &productService{
		productRepo:       productRepo,
		defaultCategoryID: defaultCategoryID,
	}
}

// ListProducts retrieves all products matching the filter
func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// CreateProduct creates a new product
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	categoryID := input.CategoryID
	if categoryID == uuid.Nil {
		categoryID = s.defaultCategoryID
	}

	product := &entity.Product{
		ID:           uuid.New(),
		Name:         input.Name,
		SKU:          input.SKU,
		CategoryID:   categoryID,
		StoreID:      input.StoreID,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Description:  input.Description,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// UpdateProduct applies a partial update to an existing product
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	update := repository.ProductUpdate{
		Name:         input.Name,
		SKU:          input.SKU,
		CategoryID:   input.CategoryID,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		Description:  input.Description,
	}

	product, err := s.productRepo.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
