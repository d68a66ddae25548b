package handler

import (
	"context"
	"log/slog"
	"net/http"

	"stocklens/config"
	"stocklens/internal/delivery/http/response"
	"stocklens/internal/usecase"
	"stocklens/internal/viewstate"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	Config      *config.Config
	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler holds dependencies for dashboard-related handlers
type DashboardHandler struct {
	dashboardUC      usecase.DashboardUsecase
	logger           *slog.Logger
	defaultTrendDays int
	view             viewstate.Snapshot[*usecase.DashboardOverview]
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC:      params.DashboardUC,
		logger:           params.Logger,
		defaultTrendDays: params.Config.Dashboard.TrendDays,
	}
}

// GetDashboard handles retrieving the dashboard overview. Rapid repeated
// requests race through the view snapshot: only the newest request commits,
// and a failed refresh falls back to the last committed overview.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	storeID, err := queryUUID(c, "store_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_STORE_ID", "Invalid store ID")
	}

	trendDays := cast.ToInt(c.QueryParam("days"))
	if trendDays == 0 {
		trendDays = h.defaultTrendDays
	}

	overview, err := h.view.Refresh(c.Request().Context(), func(ctx context.Context) (*usecase.DashboardOverview, error) {
		return h.dashboardUC.Overview(ctx, storeID, trendDays)
	})
	if err != nil {
		if overview != nil {
			h.logger.Warn("dashboard refresh failed, serving last snapshot",
				slog.String("error", err.Error()),
			)

			return response.Success(c, http.StatusOK, overview, "Showing last loaded dashboard")
		}

		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview, "Dashboard retrieved successfully")
}
