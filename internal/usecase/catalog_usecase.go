package usecase

import (
	"context"

	"greenlake/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase serves the bookable catalog and the current offers.
type CatalogUsecase interface {
	ListHotels(ctx context.Context, city string) ([]*entity.Hotel, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	ListVehicles(ctx context.Context) ([]*entity.Vehicle, error)
	ListRoutes(ctx context.Context) ([]*entity.Route, error)
	ListServices(ctx context.Context) ([]*entity.Service, error)
	ListActiveDiscounts(ctx context.Context) ([]*entity.Discount, error)
	ListActiveAmenities(ctx context.Context) ([]*entity.Amenity, error)
}
