package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AvailabilityUsecase answers read-only capacity questions. Its answers are
// projections and never reserve anything.
type AvailabilityUsecase interface {
	// CheckHotelAvailability reports whether every day in [start, end] has enough free
	// rooms for the party.
	CheckHotelAvailability(ctx context.Context, hotelID uuid.UUID, start, end time.Time, guests int) (bool, error)

	// CheckVehicleAvailability reports whether the vehicle has no overlapping booking in
	// carts or non-cancelled orders. Items held in excludeCartID are ignored; pass uuid.Nil
	// to count every cart.
	CheckVehicleAvailability(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeCartID uuid.UUID) (bool, error)
}
