package handler

import (
	"log/slog"
	"net/http"

	"stocklens/internal/delivery/http/response"
	"stocklens/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler holds dependencies for import-related handlers
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// ImportCSV handles a multipart CSV upload
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "IMPORT_FILE_MISSING", "No file uploaded")
	}

	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "IMPORT_FILE_INVALID", "Uploaded file could not be read")
	}
	defer src.Close()

	result, err := h.importUC.ImportCSV(c.Request().Context(), fileHeader.Filename, src, storeID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "CSV import completed successfully")
}

// ImportSQL handles delegating an import to the external SQL bridge
func (h *ImportHandler) ImportSQL(c echo.Context) error {
	var input usecase.SQLImportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SQL import input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.importUC.ImportSQL(c.Request().Context(), &input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "SQL import completed successfully")
}

// GetImportHistory handles listing this session's completed imports
func (h *ImportHandler) GetImportHistory(c echo.Context) error {
	entries, err := h.importUC.History(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Import history retrieved successfully")
}
