package handler

import (
	"context"
	"log/slog"
	"net/http"

	"stocklens/internal/analytics"
	"stocklens/internal/delivery/http/response"
	"stocklens/internal/usecase"
	"stocklens/internal/viewstate"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

// ProfitabilityHandlerParams holds dependencies for ProfitabilityHandler, injected by Fx.
type ProfitabilityHandlerParams struct {
	fx.In

	ProfitabilityUC usecase.ProfitabilityUsecase
	Logger          *slog.Logger
}

// ProfitabilityHandler holds dependencies for profitability-related handlers
type ProfitabilityHandler struct {
	profitabilityUC usecase.ProfitabilityUsecase
	logger          *slog.Logger
	view            viewstate.Snapshot[*usecase.ProfitabilityAnalysis]
}

// NewProfitabilityHandler is the constructor for ProfitabilityHandler
func NewProfitabilityHandler(params ProfitabilityHandlerParams) *ProfitabilityHandler {
	return &ProfitabilityHandler{
		profitabilityUC: params.ProfitabilityUC,
		logger:          params.Logger,
	}
}

// GetProfitability handles retrieving the profitability analysis. Like the
// dashboard, it serves the last committed analysis when a refresh fails.
func (h *ProfitabilityHandler) GetProfitability(c echo.Context) error {
	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	days := cast.ToInt(c.QueryParam("days"))
	sortKey := analytics.ParseSortKey(c.QueryParam("sort"))

	analysis, err := h.view.Refresh(c.Request().Context(), func(ctx context.Context) (*usecase.ProfitabilityAnalysis, error) {
		return h.profitabilityUC.Analyze(ctx, storeID, days, sortKey)
	})
	if err != nil {
		if analysis != nil {
			h.logger.Warn("profitability refresh failed, serving last snapshot",
				slog.String("error", err.Error()),
			)

			return response.Success(c, http.StatusOK, analysis, "Showing last loaded analysis")
		}

		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis, "Profitability analysis retrieved successfully")
}
