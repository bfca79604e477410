package broker

import (
	"context"
	"log/slog"

	"greenlake/config"
	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	"github.com/IBM/sarama"
)

// Headers attached to dead-lettered messages
const (
	HeaderOriginalTopic = "Original-Topic"
	HeaderError         = "Error"
)

// DLQProducer parks messages the ingestor gave up on
type DLQProducer struct {
	producer      sarama.AsyncProducer
	logger        *slog.Logger
	topic         string
	originalTopic string
	done          chan struct{}
}

// NewDLQProducer connects an async producer to the dead-letter topic
func NewDLQProducer(cfg *config.BrokerConfig, logger *slog.Logger) (*DLQProducer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if cfg.DLQTopic == "" {
		return nil, errors.New("kafka dlq topic is empty")
	}

	saramaConfig, err := createSaramaConfig(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewAsyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka dlq producer")
	}

	return newDLQProducer(producer, cfg.DLQTopic, cfg.Topic, logger), nil
}

func newDLQProducer(producer sarama.AsyncProducer, topic, originalTopic string, logger *slog.Logger) *DLQProducer {
	p := &DLQProducer{
		producer:      producer,
		logger:        logger,
		topic:         topic,
		originalTopic: originalTopic,
		done:          make(chan struct{}),
	}
	go p.drain()

	return p
}

// drain consumes the result channels; the producer blocks when they fill up
func (p *DLQProducer) drain() {
	defer close(p.done)

	successes := p.producer.Successes()
	failures := p.producer.Errors()
	for successes != nil || failures != nil {
		select {
		case _, ok := <-successes:
			if !ok {
				successes = nil

				continue
			}
			metrics.DatasetMessagesDLQ.Inc()
		case perr, ok := <-failures:
			if !ok {
				failures = nil

				continue
			}
			p.logger.Error("failed to deliver message to DLQ",
				slog.String("topic", p.topic),
				slog.Any("error", perr.Err),
			)
		}
	}
}

// Send queues message for the DLQ with the cause in its headers
func (p *DLQProducer) Send(ctx context.Context, key, message []byte, cause error) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(message),
		Headers: []sarama.RecordHeader{
			{Key: []byte(HeaderOriginalTopic), Value: []byte(p.originalTopic)},
			{Key: []byte(HeaderError), Value: []byte(cause.Error())},
		},
	}
	if len(key) > 0 {
		msg.Key = sarama.ByteEncoder(key)
	}

	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		p.logger.Warn("context cancelled before sending message to DLQ",
			slog.Any("error", ctx.Err()),
			slog.String("original_topic", p.originalTopic),
		)

		return errors.WithStack(ctx.Err())
	}
}

// Close flushes pending messages and waits for their results
func (p *DLQProducer) Close() error {
	p.logger.Info("closing Kafka DLQ producer")
	p.producer.AsyncClose()
	<-p.done

	return nil
}
