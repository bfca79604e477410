package handler

import (
	"context"
	"log/slog"
	"time"

	"greenlake/config"
	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
	"greenlake/internal/infra/broker"
	"greenlake/internal/infra/metrics"
	"greenlake/internal/usecase"

	"github.com/avast/retry-go"
	"go.uber.org/fx"
)

// DeadLetterSink receives records the processor gave up on.
type DeadLetterSink interface {
	Send(ctx context.Context, key, message []byte, cause error) error
}

// RecordProcessor feeds Kafka messages to the ingestor, retrying transient failures.
// Records it cannot store are handed to the dead-letter sink.
type RecordProcessor struct {
	ingest   usecase.DatasetIngestUsecase
	dlq      DeadLetterSink
	logger   *slog.Logger
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

// RecordProcessorParams holds dependencies for the RecordProcessor
type RecordProcessorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Ingest usecase.DatasetIngestUsecase
	DLQ    DeadLetterSink
}

// NewRecordProcessor creates the Kafka message processor
func NewRecordProcessor(params RecordProcessorParams) *RecordProcessor {
	attempts := uint(3)
	delay := 200 * time.Millisecond
	maxDelay := 5 * time.Second
	if w := params.Config.Worker; w != nil {
		if w.RetryAttempts > 0 {
			attempts = w.RetryAttempts
		}
		if w.RetryDelay > 0 {
			delay = w.RetryDelay
		}
		if w.RetryMaxDelay > 0 {
			maxDelay = w.RetryMaxDelay
		}
	}

	return &RecordProcessor{
		ingest:   params.Ingest,
		dlq:      params.DLQ,
		logger:   params.Logger,
		attempts: attempts,
		delay:    delay,
		maxDelay: maxDelay,
	}
}

// ProcessMessage implements broker.MessageProcessor. It only fails when ctx ends before
// the record was stored or parked in the DLQ.
func (p *RecordProcessor) ProcessMessage(ctx context.Context, key, value []byte) error {
	start := time.Now()
	defer func() {
		metrics.DatasetProcessingTime.Observe(time.Since(start).Seconds())
	}()

	record, err := broker.DecodeRecord(value)
	if err != nil {
		return p.fail(ctx, "", key, value, errors.Wrap(usecase.ErrMalformedRecord, err.Error()))
	}

	logger := p.logger.With(
		slog.String("dataset", string(record.Dataset)),
		slog.String("key", record.Key),
	)

	err = retry.Do(
		func() error {
			return p.ingest.Ingest(ctx, record)
		},
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.MaxDelay(p.maxDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return !usecase.IsPermanent(err)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("[Worker] Ingest attempt failed", slog.Uint64("attempt", uint64(n+1)), slog.Any("error", err))
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "ingest interrupted")
		}

		return p.fail(ctx, record.Dataset, key, value, err)
	}

	metrics.DatasetMessagesProcessed.WithLabelValues(string(record.Dataset)).Inc()
	logger.Debug("[Worker] Record ingested")

	return nil
}

func (p *RecordProcessor) fail(ctx context.Context, dataset entity.Dataset, key, value []byte, cause error) error {
	reason := failureReason(cause)
	metrics.DatasetMessagesFailed.WithLabelValues(datasetLabel(dataset), reason).Inc()

	p.logger.Error("[Worker] Giving up on record",
		slog.String("dataset", string(dataset)),
		slog.String("message_key", string(key)),
		slog.String("reason", reason),
		slog.Any("error", cause),
	)

	if err := p.dlq.Send(ctx, key, value, cause); err != nil {
		p.logger.Error("[Worker] Failed to send record to DLQ", slog.Any("error", err))

		return errors.Wrap(err, "failed to dead-letter record")
	}

	return nil
}

func failureReason(err error) string {
	if usecase.IsPermanent(err) {
		return "malformed"
	}

	return "retries_exhausted"
}

func datasetLabel(dataset entity.Dataset) string {
	if dataset == "" {
		return "unknown"
	}

	return string(dataset)
}
