package usecase

import (
	"context"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
)

// ErrMalformedRecord marks a dataset record that can never be ingested. Retrying it is pointless.
var ErrMalformedRecord = errors.New("malformed dataset record")

// RecordError reports a record that failed validation.
type RecordError struct {
	Line   int    `json:"line"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// ImportReport summarises one importer run.
type ImportReport struct {
	Dataset   entity.Dataset `json:"dataset"`
	Total     int            `json:"total"`
	Published int            `json:"published"`
	Rejected  []RecordError  `json:"rejected,omitempty"`
}

// DatasetImportUsecase validates CSV records and hands them to the broker.
type DatasetImportUsecase interface {
	// Import publishes every valid record. Invalid ones are reported, not published.
	// The first publish failure aborts the run.
	Import(ctx context.Context, dataset entity.Dataset, records []*entity.DatasetRecord) (*ImportReport, error)
}

// DatasetIngestUsecase drains records from the broker into the store.
type DatasetIngestUsecase interface {
	// Ingest upserts one record. Errors wrapping ErrMalformedRecord are permanent;
	// anything else may succeed on retry.
	Ingest(ctx context.Context, record *entity.DatasetRecord) error
}

// IsPermanent reports whether an ingest error should not be retried.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrMalformedRecord)
}
