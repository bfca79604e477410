package service

import (
	"context"

	"greenlake/internal/domain/entity"
)

// DatasetPublisher sends dataset records to the broker for the ingestor
type DatasetPublisher interface {
	// Publish sends one record. It returns once the broker accepted it.
	Publish(ctx context.Context, record *entity.DatasetRecord) error

	// Close releases any resources held by the publisher
	Close() error
}
