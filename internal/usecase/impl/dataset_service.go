package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"go.uber.org/fx"
)

// datasetImportService validates CSV records and publishes the valid ones.
type datasetImportService struct {
	publisher service.DatasetPublisher
	logger    *slog.Logger
}

// DatasetImportServiceParams holds dependencies for DatasetImportService, injected by Fx.
type DatasetImportServiceParams struct {
	fx.In

	Publisher service.DatasetPublisher
	Logger    *slog.Logger
}

// NewDatasetImportService creates the importer side of the dataset pipeline.
func NewDatasetImportService(params DatasetImportServiceParams) usecase.DatasetImportUsecase {
	return &datasetImportService{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *datasetImportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *datasetImportService) Import(ctx context.Context, dataset entity.Dataset, records []*entity.DatasetRecord) (*usecase.ImportReport, error) {
	report := &usecase.ImportReport{Dataset: dataset, Total: len(records)}

	for _, record := range records {
		if record == nil {
			continue
		}
		record.Dataset = dataset

		if record.Key == "" {
			report.Rejected = append(report.Rejected, usecase.RecordError{
				Line:   record.Line,
				Reason: "missing key columns " + strings.Join(dataset.KeyColumns(), ", "),
			})

			continue
		}

		if _, err := decodeRecord(record); err != nil {
			report.Rejected = append(report.Rejected, usecase.RecordError{
				Line:   record.Line,
				Key:    record.Key,
				Reason: err.Error(),
			})

			continue
		}

		if err := srv.publisher.Publish(ctx, record); err != nil {
			return report, errors.Wrapf(err, "failed to publish %s record %q (line %d)", dataset, record.Key, record.Line)
		}
		report.Published++
	}

	srv.log(ctx).Info("Dataset import finished",
		slog.String("dataset", string(dataset)),
		slog.Int("total", report.Total),
		slog.Int("published", report.Published),
		slog.Int("rejected", len(report.Rejected)),
	)

	return report, nil
}

// datasetIngestService upserts broker records into the catalog and offer tables.
type datasetIngestService struct {
	catalogRepo repository.CatalogRepository
	offerRepo   repository.OfferRepository
	cache       service.Cache
	logger      *slog.Logger
}

// DatasetIngestServiceParams holds dependencies for DatasetIngestService, injected by Fx.
type DatasetIngestServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	OfferRepo   repository.OfferRepository
	Cache       service.Cache `optional:"true"`
	Logger      *slog.Logger
}

// NewDatasetIngestService creates the ingestor side of the dataset pipeline.
func NewDatasetIngestService(params DatasetIngestServiceParams) usecase.DatasetIngestUsecase {
	return &datasetIngestService{
		catalogRepo: params.CatalogRepo,
		offerRepo:   params.OfferRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *datasetIngestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *datasetIngestService) Ingest(ctx context.Context, record *entity.DatasetRecord) error {
	decoded, err := decodeRecord(record)
	if err != nil {
		return err
	}

	var stale []string
	switch value := decoded.(type) {
	case *entity.Hotel:
		err = srv.catalogRepo.UpsertHotel(ctx, value)
		stale = []string{"hotels:", "hotels:" + strings.ToLower(value.City), "hotel:" + value.ID.String()}
	case *entity.HotelOccupancy:
		// A missing hotel stays retryable: the hotels dataset may still be in flight.
		err = srv.catalogRepo.UpsertOccupancy(ctx, value)
	case *entity.Vehicle:
		err = srv.catalogRepo.UpsertVehicle(ctx, value)
		stale = []string{"vehicles"}
	case *entity.Route:
		err = srv.catalogRepo.UpsertRoute(ctx, value)
		stale = []string{"routes"}
	case *entity.Service:
		err = srv.catalogRepo.UpsertService(ctx, value)
		stale = []string{"services"}
	case *entity.Discount:
		err = srv.offerRepo.UpsertDiscount(ctx, value)
	case *entity.Amenity:
		err = srv.offerRepo.UpsertAmenity(ctx, value)
		stale = []string{"amenities"}
	}
	if err != nil {
		return errors.Wrapf(err, "failed to upsert %s record %q", record.Dataset, record.Key)
	}

	srv.invalidate(ctx, stale)

	return nil
}

// invalidate drops catalog cache entries the upsert made stale.
func (srv *datasetIngestService) invalidate(ctx context.Context, keys []string) {
	if srv.cache == nil {
		return
	}

	for _, key := range keys {
		if err := srv.cache.Delete(ctx, catalogCachePrefix+key); err != nil {
			srv.log(ctx).Warn("Catalog cache invalidation failed", slog.String("key", key), slog.Any("error", err))
		}
	}
}
