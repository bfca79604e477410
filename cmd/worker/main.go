package main

import (
	"context"
	"log/slog"
	"os"

	"greenlake/config"
	"greenlake/internal/delivery"
	"greenlake/internal/delivery/worker"
	"greenlake/internal/delivery/worker/handler"
	"greenlake/internal/domain/constants"
	"greenlake/internal/infra/broker"
	"greenlake/internal/infra/cache"
	logs "greenlake/internal/infra/log"
	"greenlake/internal/infra/metrics"
	"greenlake/internal/infra/persistence/postgres"
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
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectIngestion(cfg),
		injectDelivery(),
		fx.Invoke(
			metrics.Register,
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			// Expose broker config for the Kafka constructors
			func(cfg *config.Config) *config.BrokerConfig {
				if cfg.Broker == nil {
					return &config.BrokerConfig{}
				}

				return cfg.Broker
			},
			logs.New,
			context.Background,
			postgres.New,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCatalogRepository,
			postgres.NewOfferRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDatasetIngestService,
		),
	)
}

// injectIngestion picks the ingestion path for the configured broker. Kafka records
// are pulled by a consumer group; every other provider pushes to the HTTP endpoint.
func injectIngestion(cfg *config.Config) fx.Option {
	if cfg.Broker != nil && cfg.Broker.Provider == constants.BrokerProviderKafka {
		return fx.Options(
			fx.Provide(
				fx.Annotate(
					broker.NewDLQProducer,
					fx.As(fx.Self()),
					fx.As(new(handler.DeadLetterSink)),
				),
				fx.Annotate(
					handler.NewRecordProcessor,
					fx.As(new(broker.MessageProcessor)),
				),
				broker.NewConsumer,
				fx.Annotate(
					worker.NewConsumer,
					fx.ResultTags(`group:"deliveries"`),
				),
			),
		)
	}

	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
