package main

import (
	"context"
	"log/slog"
	"os"

	"stocklens/config"
	"stocklens/internal/delivery"
	"stocklens/internal/delivery/http"
	"stocklens/internal/delivery/http/middleware"
	"stocklens/internal/delivery/http/router/handler"
	"stocklens/internal/importer"
	logs "stocklens/internal/infra/log"
	"stocklens/internal/infra/persistence/postgres"
	"stocklens/internal/infra/sqlbridge"
	"stocklens/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewSaleRepository,
			postgres.NewCategoryRepository,
			postgres.NewStoreRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			importer.NewHistory,
			sqlbridge.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDashboardService,
			impl.NewProfitabilityService,
			impl.NewReportService,
			impl.NewImportService,
			impl.NewProductService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDashboardHandler,
			handler.NewProfitabilityHandler,
			handler.NewReportHandler,
			handler.NewImportHandler,
			handler.NewProductHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
