package main

import (
	"context"
	"log/slog"
	"os"

	"wildnav/config"
	"wildnav/internal/delivery"
	"wildnav/internal/delivery/http"
	"wildnav/internal/delivery/http/router/handler"
	"wildnav/internal/infra/directions"
	"wildnav/internal/infra/export"
	"wildnav/internal/infra/location"
	logs "wildnav/internal/infra/log"
	"wildnav/internal/infra/metrics"
	"wildnav/internal/infra/pubsub"
	"wildnav/internal/infra/sighting"
	"wildnav/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		directions.Module,
		sighting.Module,
		pubsub.Module,
		fx.Provide(
			location.NewFactory,
			export.NewKMLExporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHotspotService,
			impl.NewNavigationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewHotspotHandler,
			handler.NewSessionHandler,
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
