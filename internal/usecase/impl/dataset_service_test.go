package impl

import (
	"context"
	"testing"

	"greenlake/internal/domain/entity"
	mockRepo "greenlake/internal/mocks/repository"
	mockSvc "greenlake/internal/mocks/service"
	"greenlake/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hotelRecord(line int, code string) *entity.DatasetRecord {
	return &entity.DatasetRecord{
		Dataset: entity.DatasetHotels,
		Key:     code,
		Line:    line,
		Fields: map[string]string{
			"code":                  code,
			"name":                  "Lakeside Lodge",
			"city":                  "GreenLake",
			"stars":                 "4",
			"price_per_night":       "120.50",
			"recycling_rate":        "80",
			"renewable_energy_rate": "60%",
			"waste_reduction_rate":  "70",
		},
	}
}

func TestDecodeRecord_Hotel(t *testing.T) {
	decoded, err := decodeRecord(hotelRecord(2, "H-001"))

	require.NoError(t, err)
	hotel, ok := decoded.(*entity.Hotel)
	require.True(t, ok)
	assert.Equal(t, datasetID(entity.DatasetHotels, "H-001"), hotel.ID)
	assert.Equal(t, 4, hotel.Stars)
	assert.True(t, hotel.PricePerNight.Equal(decimal.RequireFromString("120.50")))
	assert.InDelta(t, 60.0, hotel.RenewableEnergyRate, 1e-9)
	assert.Equal(t, entity.HotelEcoScore(80, 60, 70), hotel.EcoScore)
}

func TestDecodeRecord_IDIsStableAcrossImports(t *testing.T) {
	first, err := decodeRecord(hotelRecord(2, "H-001"))
	require.NoError(t, err)

	again := hotelRecord(40, "H-001")
	again.Fields["name"] = "Renamed"
	second, err := decodeRecord(again)
	require.NoError(t, err)

	assert.Equal(t, first.(*entity.Hotel).ID, second.(*entity.Hotel).ID)
}

func TestDecodeRecord_OccupancyReferencesHotelID(t *testing.T) {
	decoded, err := decodeRecord(&entity.DatasetRecord{
		Dataset: entity.DatasetHotelOccupancy,
		Key:     "H-001|2025-07-01",
		Fields: map[string]string{
			"hotel_code":     "H-001",
			"date":           "2025-07-01",
			"occupancy_rate": "85.5",
		},
	})

	require.NoError(t, err)
	occupancy := decoded.(*entity.HotelOccupancy)
	assert.Equal(t, datasetID(entity.DatasetHotels, "H-001"), occupancy.HotelID)
	assert.Equal(t, date(2025, 7, 1), occupancy.Date)
}

func TestDecodeRecord_Discount(t *testing.T) {
	fields := map[string]string{
		"code":           "SUMMER",
		"name":           "Summer deal",
		"token_cost":     "50",
		"discount_type":  "percentage",
		"discount_value": "15",
		"valid_from":     "2025-06-01",
		"valid_until":    "2025-08-31",
	}

	decoded, err := decodeRecord(&entity.DatasetRecord{Dataset: entity.DatasetDiscounts, Key: "SUMMER", Fields: fields})

	require.NoError(t, err)
	discount := decoded.(*entity.Discount)
	assert.Equal(t, entity.DiscountTypePercentage, discount.DiscountType)
	assert.True(t, discount.IsActive)
	assert.Nil(t, discount.MaxUses)
	assert.Equal(t, int64(50), discount.TokenCost)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		record  *entity.DatasetRecord
		problem string
	}{
		{
			name:    "nil record",
			problem: "empty record",
		},
		{
			name:    "unknown dataset",
			record:  &entity.DatasetRecord{Dataset: "flights", Fields: map[string]string{"code": "F1"}},
			problem: "unknown dataset",
		},
		{
			name: "bad number",
			record: func() *entity.DatasetRecord {
				r := hotelRecord(3, "H-002")
				r.Fields["stars"] = "four"

				return r
			}(),
			problem: "stars: not an integer",
		},
		{
			name: "percentage out of range",
			record: func() *entity.DatasetRecord {
				r := hotelRecord(3, "H-002")
				r.Fields["recycling_rate"] = "120"

				return r
			}(),
			problem: "recycling_rate: must be between 0 and 100",
		},
		{
			name: "window reversed",
			record: &entity.DatasetRecord{Dataset: entity.DatasetDiscounts, Fields: map[string]string{
				"code": "X", "name": "X", "token_cost": "1", "discount_type": "FIXED_AMOUNT",
				"discount_value": "5", "valid_from": "2025-09-01", "valid_until": "2025-08-01",
			}},
			problem: "valid_until: is before valid_from",
		},
		{
			name: "unknown discount type",
			record: &entity.DatasetRecord{Dataset: entity.DatasetDiscounts, Fields: map[string]string{
				"code": "X", "name": "X", "token_cost": "1", "discount_type": "BOGO",
				"discount_value": "5", "valid_from": "2025-08-01", "valid_until": "2025-09-01",
			}},
			problem: "discount_type: must be PERCENTAGE or FIXED_AMOUNT",
		},
		{
			name: "free amenity",
			record: &entity.DatasetRecord{Dataset: entity.DatasetAmenities, Fields: map[string]string{
				"code": "TOWEL", "name": "Towel", "token_cost": "0",
			}},
			problem: "token_cost: must be at least 1",
		},
		{
			name: "zero seats",
			record: &entity.DatasetRecord{Dataset: entity.DatasetVehicles, Fields: map[string]string{
				"code": "EV-1", "name": "Cargo bike", "vehicle_type": "bike", "seats": "0", "price_per_day": "12",
			}},
			problem: "seats: must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := decodeRecord(tt.record)

			assert.Nil(t, decoded)
			require.ErrorIs(t, err, usecase.ErrMalformedRecord)
			assert.True(t, usecase.IsPermanent(err))
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

type datasetImportFixtures struct {
	service   usecase.DatasetImportUsecase
	publisher *mockSvc.MockDatasetPublisher
}

func createTestDatasetImportService(t *testing.T) datasetImportFixtures {
	publisher := mockSvc.NewMockDatasetPublisher(t)

	return datasetImportFixtures{
		service:   NewDatasetImportService(DatasetImportServiceParams{Publisher: publisher, Logger: newDiscardLogger()}),
		publisher: publisher,
	}
}

func TestDatasetImportService_Import_ReportsRejects(t *testing.T) {
	fx := createTestDatasetImportService(t)

	ctx := context.Background()
	bad := hotelRecord(3, "H-002")
	bad.Fields["price_per_night"] = "-3"
	noKey := hotelRecord(4, "")
	records := []*entity.DatasetRecord{hotelRecord(2, "H-001"), bad, noKey}

	fx.publisher.EXPECT().Publish(ctx, records[0]).Return(nil)

	report, err := fx.service.Import(ctx, entity.DatasetHotels, records)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Published)
	require.Len(t, report.Rejected, 2)
	assert.Equal(t, 3, report.Rejected[0].Line)
	assert.Contains(t, report.Rejected[0].Reason, "price_per_night")
	assert.Equal(t, 4, report.Rejected[1].Line)
	assert.Contains(t, report.Rejected[1].Reason, "missing key columns code")
}

func TestDatasetImportService_Import_PublishFailureAborts(t *testing.T) {
	fx := createTestDatasetImportService(t)

	ctx := context.Background()
	records := []*entity.DatasetRecord{hotelRecord(2, "H-001"), hotelRecord(3, "H-002")}
	fx.publisher.EXPECT().Publish(ctx, records[0]).Return(errors.New("broker unreachable"))

	report, err := fx.service.Import(ctx, entity.DatasetHotels, records)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unreachable")
	assert.Equal(t, 0, report.Published)
}

type datasetIngestFixtures struct {
	service     usecase.DatasetIngestUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	offerRepo   *mockRepo.MockOfferRepository
	cache       *mockSvc.MockCache
}

func createTestDatasetIngestService(t *testing.T) datasetIngestFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	cache := mockSvc.NewMockCache(t)

	srv := NewDatasetIngestService(DatasetIngestServiceParams{
		CatalogRepo: catalogRepo,
		OfferRepo:   offerRepo,
		Cache:       cache,
		Logger:      newDiscardLogger(),
	})

	return datasetIngestFixtures{
		service:     srv,
		catalogRepo: catalogRepo,
		offerRepo:   offerRepo,
		cache:       cache,
	}
}

func TestDatasetIngestService_Ingest_HotelInvalidatesCache(t *testing.T) {
	fx := createTestDatasetIngestService(t)

	ctx := context.Background()
	id := datasetID(entity.DatasetHotels, "H-001")
	fx.catalogRepo.EXPECT().UpsertHotel(ctx, mock.AnythingOfType("*entity.Hotel")).Return(nil)
	fx.cache.EXPECT().Delete(ctx, "catalog:hotels:").Return(nil)
	fx.cache.EXPECT().Delete(ctx, "catalog:hotels:greenlake").Return(nil)
	fx.cache.EXPECT().Delete(ctx, "catalog:hotel:"+id.String()).Return(nil)

	require.NoError(t, fx.service.Ingest(ctx, hotelRecord(2, "H-001")))
}

func TestDatasetIngestService_Ingest_Amenity(t *testing.T) {
	fx := createTestDatasetIngestService(t)

	ctx := context.Background()
	record := &entity.DatasetRecord{
		Dataset: entity.DatasetAmenities,
		Key:     "BIKE",
		Fields:  map[string]string{"code": "BIKE", "name": "Bike rental", "token_cost": "15", "max_quantity": "3"},
	}
	fx.offerRepo.EXPECT().
		UpsertAmenity(ctx, mock.AnythingOfType("*entity.Amenity")).
		Run(func(_ context.Context, a *entity.Amenity) {
			require.NotNil(t, a.MaxQuantity)
			assert.Equal(t, 3, *a.MaxQuantity)
		}).
		Return(nil)
	fx.cache.EXPECT().Delete(ctx, "catalog:amenities").Return(nil)

	require.NoError(t, fx.service.Ingest(ctx, record))
}

func TestDatasetIngestService_Ingest_StoreErrorIsRetryable(t *testing.T) {
	fx := createTestDatasetIngestService(t)

	ctx := context.Background()
	fx.catalogRepo.EXPECT().UpsertHotel(ctx, mock.AnythingOfType("*entity.Hotel")).Return(errors.New("deadlock detected"))

	err := fx.service.Ingest(ctx, hotelRecord(2, "H-001"))

	require.Error(t, err)
	assert.False(t, usecase.IsPermanent(err))
}

func TestDatasetIngestService_Ingest_MalformedIsPermanent(t *testing.T) {
	fx := createTestDatasetIngestService(t)

	record := hotelRecord(2, "H-001")
	delete(record.Fields, "name")

	err := fx.service.Ingest(context.Background(), record)

	assert.True(t, usecase.IsPermanent(err))
}
