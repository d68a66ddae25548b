package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"stocklens/internal/delivery/http/response"
	"stocklens/internal/domain/entity"
	"stocklens/internal/usecase"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for report-related handlers
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// GetReport handles building a report for on-screen rendering
func (h *ReportHandler) GetReport(c echo.Context) error {
	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	rng, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE_RANGE", err.Error())
	}

	bundle, err := h.reportUC.Build(c.Request().Context(), usecase.ReportType(c.Param("type")), storeID, rng)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bundle, "Report generated successfully")
}

// ExportReport handles rendering a report as a CSV download
func (h *ReportHandler) ExportReport(c echo.Context) error {
	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	rng, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE_RANGE", err.Error())
	}

	file, err := h.reportUC.Export(c.Request().Context(), usecase.ReportType(c.Param("type")), storeID, rng)
	if err != nil {
		return handleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Filename))

	return c.Blob(http.StatusOK, file.ContentType, []byte(file.Content))
}

// parseDateRange reads the optional start_date and end_date query parameters.
// Any recognizable date form is accepted and normalized to a calendar date;
// empty parameters leave the window to the report service's default.
func parseDateRange(c echo.Context) (usecase.DateRange, error) {
	var rng usecase.DateRange

	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := dateparse.ParseAny(raw)
		if err != nil {
			return usecase.DateRange{}, fmt.Errorf("unrecognized start_date %q", raw)
		}
		rng.Start = start.Format(entity.SaleDateLayout)
	}

	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := dateparse.ParseAny(raw)
		if err != nil {
			return usecase.DateRange{}, fmt.Errorf("unrecognized end_date %q", raw)
		}
		rng.End = end.Format(entity.SaleDateLayout)
	}

	return rng, nil
}
