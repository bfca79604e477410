package repository

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrHotelNotFound is returned when a hotel is not found.
	ErrHotelNotFound = errors.New("hotel not found")
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// CatalogRepository defines read and upsert operations on bookable entities.
type CatalogRepository interface {
	FindHotelByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)

	// ListHotels lists hotels, filtered by city when city is not empty.
	ListHotels(ctx context.Context, city string) ([]*entity.Hotel, error)

	// ListOccupancy returns the occupancy rows of a hotel with date in [from, to], ordered by date.
	ListOccupancy(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*entity.HotelOccupancy, error)

	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	ListRoutes(ctx context.Context) ([]*entity.Route, error)
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// Upserts keyed on the entity ID, used by the dataset ingestor.
	UpsertHotel(ctx context.Context, hotel *entity.Hotel) error
	UpsertOccupancy(ctx context.Context, occupancy *entity.HotelOccupancy) error
	UpsertVehicle(ctx context.Context, vehicle *entity.Vehicle) error
	UpsertRoute(ctx context.Context, route *entity.Route) error
	UpsertService(ctx context.Context, service *entity.Service) error
}
