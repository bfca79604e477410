package broker

import (
	"context"
	"log/slog"

	"greenlake/config"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"

	"github.com/IBM/sarama"
)

// kafkaPublisher implements DatasetPublisher with a synchronous Kafka producer
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher connects a sync producer to the configured brokers
func NewKafkaPublisher(cfg *config.BrokerConfig, logger *slog.Logger) (service.DatasetPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, errors.New("kafka brokers list is empty")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is empty")
	}

	saramaConfig, err := createSaramaConfig(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	// SyncProducer requires both
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", cfg.Kafka.Brokers),
		slog.String("topic", cfg.Topic),
	)

	return newKafkaPublisher(producer, cfg.Topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends the record and waits for the broker acknowledgement
func (p *kafkaPublisher) Publish(ctx context.Context, record *entity.DatasetRecord) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	data, err := EncodeRecord(record)
	if err != nil {
		return err
	}

	attrs := Attributes(record)
	headers := make([]sarama.RecordHeader, 0, len(attrs))
	for key, value := range attrs {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(MessageKey(record)),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s record %s", record.Dataset, record.Key)
	}

	p.logger.Debug("[Kafka] Record published",
		slog.String("dataset", string(record.Dataset)),
		slog.String("key", record.Key),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}

func createSaramaConfig(cfg config.KafkaConfig) (*sarama.Config, error) {
	version := sarama.DefaultVersion
	if cfg.Version != "" {
		parsed, err := sarama.ParseKafkaVersion(cfg.Version)
		if err != nil {
			return nil, errors.Wrapf(err, "parse kafka version %q", cfg.Version)
		}
		version = parsed
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = version
	if cfg.ClientID != "" {
		saramaConfig.ClientID = cfg.ClientID
	}
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	return saramaConfig, nil
}
