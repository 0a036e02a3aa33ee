package main

import (
	"context"
	"log/slog"
	"os"

	"autoparts/config"
	"autoparts/internal/delivery"
	"autoparts/internal/delivery/web"
	"autoparts/internal/delivery/web/middleware"
	"autoparts/internal/delivery/web/router/handler"
	logs "autoparts/internal/infra/log"
	"autoparts/internal/infra/remoteapi"
	"autoparts/internal/infra/tokenstore"
	"autoparts/internal/infra/validation"
	"autoparts/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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
		injectRemote(),
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
		validation.New,
		tokenstore.NewFactory,
		newRegistry,
	)
}

// newRegistry exposes one registry both for collectors and for /metrics.
func newRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry, registry
}

func injectRemote() fx.Option {
	return fx.Options(
		fx.Provide(
			remoteapi.New,
			remoteapi.NewAuthAPI,
			remoteapi.NewUserAPI,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewRouteGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
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
