package worker

import (
	"context"
	"log/slog"
	"sync"

	"greenlake/internal/delivery"
	"greenlake/internal/errors"
	"greenlake/internal/infra/broker"

	"go.uber.org/fx"
)

// kafkaWorker runs the dataset consumer group until the application stops.
type kafkaWorker struct {
	consumer *broker.Consumer
	dlq      *broker.DLQProducer
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// ConsumerParams holds dependencies for the Kafka consumer delivery
type ConsumerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Logger   *slog.Logger
	Consumer *broker.Consumer
	DLQ      *broker.DLQProducer
}

// NewConsumer wraps the consumer group as a delivery.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	w := &kafkaWorker{
		consumer: params.Consumer,
		dlq:      params.DLQ,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

// Serve consumes until stop is called or the group fails
func (w *kafkaWorker) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()
	defer close(w.done)

	w.logger.Info("Starting Kafka dataset consumer")

	return errors.WithStack(w.consumer.Consume(ctx))
}

// stop cancels consumption, then flushes the DLQ once no record is in flight
func (w *kafkaWorker) stop(ctx context.Context) error {
	w.logger.Info("Shutting down Kafka dataset consumer")

	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()

	var stopErr error
	if cancel != nil {
		cancel()
		select {
		case <-w.done:
		case <-ctx.Done():
			stopErr = errors.Wrap(ctx.Err(), "consumer did not stop in time")
		}
	}

	if err := w.consumer.Close(); err != nil {
		stopErr = errors.Join(stopErr, err)
	}
	if err := w.dlq.Close(); err != nil {
		stopErr = errors.Join(stopErr, err)
	}

	return stopErr
}
