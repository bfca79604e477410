package main

import (
	"context"
	"log/slog"
	"os"

	"greenlake/config"
	"greenlake/internal/delivery"
	"greenlake/internal/delivery/api"
	"greenlake/internal/delivery/api/middleware"
	"greenlake/internal/delivery/api/router/handler"
	"greenlake/internal/infra/auth"
	"greenlake/internal/infra/cache"
	"greenlake/internal/infra/custody"
	"greenlake/internal/infra/ledger"
	logs "greenlake/internal/infra/log"
	"greenlake/internal/infra/metrics"
	"greenlake/internal/infra/persistence/postgres"
	"greenlake/internal/infra/qrcode"
	"greenlake/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			metrics.Register,
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
			postgres.NewUserRepository,
			postgres.NewCatalogRepository,
			postgres.NewOfferRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewRedemptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ledger.NewClient,
			custody.NewCustodialWallet,
			qrcode.NewQRCodeService,
			cache.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewAvailabilityService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewRewardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewRewardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
