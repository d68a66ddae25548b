// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stocklens/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DashboardHandler     *handler.DashboardHandler
	ProfitabilityHandler *handler.ProfitabilityHandler
	ReportHandler        *handler.ReportHandler
	ImportHandler        *handler.ImportHandler
	ProductHandler       *handler.ProductHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	dashboardHandler     *handler.DashboardHandler
	profitabilityHandler *handler.ProfitabilityHandler
	reportHandler        *handler.ReportHandler
	importHandler        *handler.ImportHandler
	productHandler       *handler.ProductHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dashboardHandler:     params.DashboardHandler,
		profitabilityHandler: params.ProfitabilityHandler,
		reportHandler:        params.ReportHandler,
		importHandler:        params.ImportHandler,
		productHandler:       params.ProductHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/dashboard", r.dashboardHandler.GetDashboard)
		apiGroup.GET("/profitability", r.profitabilityHandler.GetProfitability)

		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("/:type", r.reportHandler.GetReport)
			reportGroup.GET("/:type/export", r.reportHandler.ExportReport)
		}

		importGroup := apiGroup.Group("/import")
		{
			importGroup.POST("/csv", r.importHandler.ImportCSV)
			importGroup.POST("/sql", r.importHandler.ImportSQL)
			importGroup.GET("/history", r.importHandler.GetImportHistory)
		}

		productGroup := apiGroup.Group("/products")
		{
			productGroup.GET("", r.productHandler.ListProducts)
			productGroup.POST("", r.productHandler.CreateProduct)
			productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		}
	}
}
