package broker

import (
	"context"
	"log/slog"

	"greenlake/config"
	"greenlake/internal/domain/constants"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when the broker is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, record *entity.DatasetRecord) error {
	p.logger.Debug("[NoopBroker] Publishing disabled, skipping",
		slog.String("dataset", string(record.Dataset)),
		slog.String("key", record.Key),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewPublisher builds the publisher selected by broker.provider. The caller owns Close.
func NewPublisher(ctx context.Context, cfg *config.BrokerConfig, logger *slog.Logger) (service.DatasetPublisher, error) {
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.BrokerProviderNoop {
		logger.Info("Broker not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.BrokerProviderKafka:
		return NewKafkaPublisher(cfg, logger)

	case constants.BrokerProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for dataset records",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.BrokerProviderGoogle:
		if cfg.Google.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.Topic == "" {
			return nil, errors.New("topic is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.Google.ProjectID, cfg.Topic, logger)

	default:
		return nil, errors.Errorf("unknown broker provider: %s", cfg.Provider)
	}
}

// PublisherParams holds dependencies for DatasetPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDatasetPublisher creates a DatasetPublisher closed on application stop
func NewDatasetPublisher(params PublisherParams) (service.DatasetPublisher, error) {
	publisher, err := NewPublisher(params.Ctx, params.Config.Broker, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing DatasetPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the broker FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDatasetPublisher),
)
