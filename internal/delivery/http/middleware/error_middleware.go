package middleware

import (
	"log/slog"
	"net/http"

	"stocklens/internal/delivery/http/response"
	domainerrors "stocklens/internal/domain/errors"
	"stocklens/internal/domain/repository"
	"stocklens/internal/importer"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// An aborted import carries the number of rows already written.
	var abortErr *importer.AbortError
	if errors.As(err, &abortErr) {
		aborted := domainerrors.ErrImportAborted.WithDetails(abortErr.Error())
		_ = response.Error(c, aborted.HTTPCode(), aborted.ErrorCode(), aborted.Message(), aborted.Details())

		return
	}

	// Repository sentinels reach the handler unwrapped.
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		_ = response.NotFound(c, "PRODUCT_NOT_FOUND", "product not found")

		return
	case errors.Is(err, repository.ErrDuplicateSKU):
		_ = response.Conflict(c, "DUPLICATE_SKU", "a product with this SKU already exists in the store")

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, message)

		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error", err.Error())
}
