package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"stocklens/internal/analytics"
	"stocklens/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDashboardUC returns a canned overview or error per call.
type stubDashboardUC struct {
	overview *usecase.DashboardOverview
	err      error
	calls    int
}

func (s *stubDashboardUC) Overview(_ context.Context, _ uuid.UUID, trendDays int) (*usecase.DashboardOverview, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	overview := *s.overview
	overview.TrendDays = trendDays

	return &overview, nil
}

func newDashboardContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	stub := &stubDashboardUC{
		overview: &usecase.DashboardOverview{
			Summary: analytics.Summary{TotalProducts: 3},
		},
	}
	handler := &DashboardHandler{
		dashboardUC:      stub,
		logger:           slog.Default(),
		defaultTrendDays: 7,
	}

	c, rec := newDashboardContext(t, "/api/dashboard?days=30")
	require.NoError(t, handler.GetDashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard retrieved successfully")
	assert.Contains(t, rec.Body.String(), `"trend_days":30`)
	assert.Contains(t, rec.Body.String(), `"total_products":3`)
}

func TestDashboardHandler_GetDashboard_DefaultTrendDays(t *testing.T) {
	stub := &stubDashboardUC{
		overview: &usecase.DashboardOverview{},
	}
	handler := &DashboardHandler{
		dashboardUC:      stub,
		logger:           slog.Default(),
		defaultTrendDays: 7,
	}

	c, rec := newDashboardContext(t, "/api/dashboard")
	require.NoError(t, handler.GetDashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trend_days":7`)
}

func TestDashboardHandler_GetDashboard_ServesStaleSnapshotOnFailure(t *testing.T) {
	stub := &stubDashboardUC{
		overview: &usecase.DashboardOverview{
			Summary: analytics.Summary{TotalProducts: 3},
		},
	}
	handler := &DashboardHandler{
		dashboardUC:      stub,
		logger:           slog.Default(),
		defaultTrendDays: 7,
	}

	c, _ := newDashboardContext(t, "/api/dashboard")
	require.NoError(t, handler.GetDashboard(c))

	// The next refresh fails; the committed overview still renders.
	stub.err = errors.New("database gone")

	c, rec := newDashboardContext(t, "/api/dashboard")
	require.NoError(t, handler.GetDashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Showing last loaded dashboard")
	assert.Contains(t, rec.Body.String(), `"total_products":3`)
}

func TestDashboardHandler_GetDashboard_FailureWithoutSnapshot(t *testing.T) {
	handler := &DashboardHandler{
		dashboardUC:      &stubDashboardUC{err: errors.New("database gone")},
		logger:           slog.Default(),
		defaultTrendDays: 7,
	}

	c, _ := newDashboardContext(t, "/api/dashboard")
	err := handler.GetDashboard(c)

	require.Error(t, err)
	assert.ErrorContains(t, err, "database gone")
}

func TestDashboardHandler_GetDashboard_InvalidStoreID(t *testing.T) {
	handler := &DashboardHandler{
		dashboardUC:      &stubDashboardUC{overview: &usecase.DashboardOverview{}},
		logger:           slog.Default(),
		defaultTrendDays: 7,
	}

	c, rec := newDashboardContext(t, "/api/dashboard?store_id=not-a-uuid")
	require.NoError(t, handler.GetDashboard(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STORE_ID")
}
