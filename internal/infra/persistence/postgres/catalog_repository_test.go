package postgres

import (
	"context"
	"testing"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCatalogRepository_UpsertHotelIsIdempotent(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()

	hotel := &entity.Hotel{
		ID:            uuid.New(),
		Code:          "H-001",
		Name:          "Lakeside Inn",
		City:          "GreenLake",
		PricePerNight: decimal.NewFromInt(90),
		EcoScore:      70,
	}
	require.NoError(t, repo.UpsertHotel(ctx, hotel))

	hotel.Name = "Lakeside Inn & Spa"
	hotel.EcoScore = 80
	require.NoError(t, repo.UpsertHotel(ctx, hotel))

	hotels, err := repo.ListHotels(ctx, "")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Lakeside Inn & Spa", hotels[0].Name)
	assert.Equal(t, 80, hotels[0].EcoScore)
	assert.True(t, decimal.NewFromInt(90).Equal(hotels[0].PricePerNight))
}

func TestCatalogRepository_ListHotelsByCity(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()

	for i, city := range []string{"GreenLake", "Riverside", "greenlake"} {
		require.NoError(t, repo.UpsertHotel(ctx, &entity.Hotel{
			ID:            uuid.New(),
			Code:          "H-" + string(rune('A'+i)),
			Name:          "Hotel " + string(rune('A'+i)),
			City:          city,
			PricePerNight: decimal.NewFromInt(50),
		}))
	}

	hotels, err := repo.ListHotels(ctx, "GREENLAKE")
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestCatalogRepository_FindNotFound(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))

	_, err := repo.FindHotelByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrHotelNotFound)

	_, err = repo.FindVehicleByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrVehicleNotFound)
}

func TestCatalogRepository_OccupancyRange(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()
	hotelID := uuid.New()

	for d := 1; d <= 5; d++ {
		require.NoError(t, repo.UpsertOccupancy(ctx, &entity.HotelOccupancy{
			ID:            uuid.New(),
			HotelID:       hotelID,
			Date:          day(2026, time.July, d),
			OccupancyRate: float64(10 * d),
		}))
	}
	// Same day again overwrites the rate.
	require.NoError(t, repo.UpsertOccupancy(ctx, &entity.HotelOccupancy{
		ID:            uuid.New(),
		HotelID:       hotelID,
		Date:          day(2026, time.July, 3),
		OccupancyRate: 99,
	}))

	rows, err := repo.ListOccupancy(ctx, hotelID, day(2026, time.July, 2), day(2026, time.July, 4))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.InDelta(t, 20.0, rows[0].OccupancyRate, 0.001)
	assert.InDelta(t, 99.0, rows[1].OccupancyRate, 0.001)
	assert.InDelta(t, 40.0, rows[2].OccupancyRate, 0.001)
}

func TestCatalogRepository_VehiclesRoutesServices(t *testing.T) {
	repo := NewCatalogRepository(newTestDB(t))
	ctx := context.Background()

	vehicleID := uuid.New()
	require.NoError(t, repo.UpsertVehicle(ctx, &entity.Vehicle{
		ID:          vehicleID,
		Code:        "V-1",
		Name:        "City E-Bike",
		VehicleType: "E_BIKE",
		Seats:       1,
		PricePerDay: decimal.NewFromInt(15),
		EcoScore:    95,
	}))
	require.NoError(t, repo.UpsertRoute(ctx, &entity.Route{
		ID:            uuid.New(),
		Code:          "R-1",
		Name:          "Lake Loop",
		TransportMode: "BUS",
		Price:         decimal.NewFromInt(3),
		EcoScore:      70,
	}))
	require.NoError(t, repo.UpsertService(ctx, &entity.Service{
		ID:    uuid.New(),
		Code:  "S-1",
		Name:  "Birdwatching tour",
		Price: decimal.NewFromInt(25),
	}))

	vehicle, err := repo.FindVehicleByID(ctx, vehicleID)
	require.NoError(t, err)
	assert.Equal(t, "E_BIKE", vehicle.VehicleType)

	vehicles, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "BUS", routes[0].TransportMode)

	services, err := repo.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Birdwatching tour", services[0].Name)
}
