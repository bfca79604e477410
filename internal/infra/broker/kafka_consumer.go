package broker

import (
	"context"
	"log/slog"

	"greenlake/config"
	"greenlake/internal/errors"

	"github.com/IBM/sarama"
)

// MessageProcessor handles one consumed message. It owns retries and dead-lettering.
// A non-nil error leaves the offset unmarked, so the message is consumed again later.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, key, value []byte) error
}

// Consumer drains the dataset topic through a consumer group
type Consumer struct {
	client    sarama.ConsumerGroup
	logger    *slog.Logger
	processor MessageProcessor
	topic     string
	groupID   string
}

type consumerGroupHandler struct {
	logger    *slog.Logger
	processor MessageProcessor
}

// NewConsumer joins the configured consumer group
func NewConsumer(cfg *config.BrokerConfig, logger *slog.Logger, processor MessageProcessor) (*Consumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is empty")
	}
	if cfg.Kafka.GroupID == "" {
		return nil, errors.New("kafka group id is empty")
	}

	saramaConfig, err := createSaramaConfig(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	client, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID, saramaConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create kafka consumer group %s", cfg.Kafka.GroupID)
	}

	logger.Info("kafka consumer created successfully",
		slog.String("group_id", cfg.Kafka.GroupID),
		slog.String("topic", cfg.Topic),
		slog.Any("brokers", cfg.Kafka.Brokers),
	)

	return &Consumer{
		client:    client,
		logger:    logger,
		processor: processor,
		topic:     cfg.Topic,
		groupID:   cfg.Kafka.GroupID,
	}, nil
}

// Consume blocks until ctx is cancelled or the group fails
func (c *Consumer) Consume(ctx context.Context) error {
	handler := &consumerGroupHandler{
		logger:    c.logger.With(slog.String("component", "consumer_handler")),
		processor: c.processor,
	}

	go func() {
		for err := range c.client.Errors() {
			c.logger.Error("kafka consumer group error",
				slog.String("group_id", c.groupID),
				slog.Any("error", err),
			)
		}
	}()

	c.logger.Info("starting kafka consumer",
		slog.String("group_id", c.groupID),
		slog.String("topic", c.topic),
	)

	for {
		// Consume returns on every rebalance and must be called again
		if err := c.client.Consume(ctx, []string{c.topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			return errors.Wrapf(err, "consume topic %s", c.topic)
		}
		if ctx.Err() != nil {
			c.logger.Info("stopping consumer due to context cancellation")

			return nil
		}
	}
}

func (c *Consumer) Close() error {
	c.logger.Info("closing kafka consumer",
		slog.String("group_id", c.groupID),
		slog.String("topic", c.topic),
	)

	return errors.WithStack(c.client.Close())
}

func (h *consumerGroupHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.logger.Info("consumer group setup complete",
		slog.String("member_id", session.MemberID()),
		slog.Int("generation_id", int(session.GenerationID())),
	)

	return nil
}

func (h *consumerGroupHandler) Cleanup(session sarama.ConsumerGroupSession) error {
	h.logger.Info("consumer group cleanup complete",
		slog.String("member_id", session.MemberID()),
		slog.Int("generation_id", int(session.GenerationID())),
	)

	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processor.ProcessMessage(ctx, msg.Key, msg.Value); err != nil {
				h.logger.Warn("leaving message unmarked",
					slog.Int64("offset", msg.Offset),
					slog.Int("partition", int(msg.Partition)),
					slog.Any("error", err),
				)

				return nil
			}
			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}
