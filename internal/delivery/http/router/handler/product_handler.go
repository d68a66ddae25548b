package handler

import (
	"log/slog"
	"net/http"

	"stocklens/internal/delivery/http/response"
	"stocklens/internal/domain/repository"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts handles retrieving products, optionally filtered by store and category
func (h *ProductHandler) ListProducts(c echo.Context) error {
	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_CATEGORY_ID", "Invalid category ID")
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), repository.ProductFilter{
		StoreID:    storeID,
		CategoryID: categoryID,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles updating an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}
