package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewAvailabilityService creates the availability checker.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	return &availabilityService{
		catalogRepo: params.CatalogRepo,
		cartRepo:    params.CartRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckHotelAvailability reports whether each day of the stay leaves enough rooms.
func (srv *availabilityService) CheckHotelAvailability(ctx context.Context, hotelID uuid.UUID, start, end time.Time, guests int) (bool, error) {
	if guests < 1 {
		return false, domainerrors.NewValidationError("guests must be at least 1")
	}

	from, to := entity.TruncateToDay(start), entity.TruncateToDay(end)
	if to.Before(from) {
		return false, domainerrors.NewValidationError("end date is before start date")
	}

	if _, err := srv.catalogRepo.FindHotelByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return false, errors.Wrap(domainerrors.ErrHotelNotFound, "failed to check hotel availability")
		}

		return false, errors.Wrap(err, "failed to find hotel")
	}

	occupancy, err := srv.catalogRepo.ListOccupancy(ctx, hotelID, from, to)
	if err != nil {
		return false, errors.Wrap(err, "failed to list hotel occupancy")
	}

	needed := entity.RoomsNeeded(guests)
	// Days without an occupancy row are fully free
	for _, day := range occupancy {
		if day.AvailableRooms() < needed {
			srv.log(ctx).Debug("Hotel is full on requested day",
				slog.String("hotel_id", hotelID.String()),
				slog.Time("date", day.Date),
				slog.Int("available_rooms", day.AvailableRooms()),
				slog.Int("rooms_needed", needed),
			)

			return false, nil
		}
	}

	return true, nil
}

// CheckVehicleAvailability reports whether no cart or live order holds the vehicle in the range.
func (srv *availabilityService) CheckVehicleAvailability(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeCartID uuid.UUID) (bool, error) {
	if end.Before(start) {
		return false, domainerrors.NewValidationError("end date is before start date")
	}

	if _, err := srv.catalogRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return false, errors.Wrap(domainerrors.ErrVehicleNotFound, "failed to check vehicle availability")
		}

		return false, errors.Wrap(err, "failed to find vehicle")
	}

	inCarts, err := srv.cartRepo.CountOverlappingVehicleItems(ctx, vehicleID, start, end, excludeCartID)
	if err != nil {
		return false, errors.Wrap(err, "failed to count vehicle cart bookings")
	}

	inOrders, err := srv.orderRepo.CountOverlappingVehicleOrders(ctx, vehicleID, start, end)
	if err != nil {
		return false, errors.Wrap(err, "failed to count vehicle order bookings")
	}

	if inCarts+inOrders > 0 {
		srv.log(ctx).Debug("Vehicle already booked",
			slog.String("vehicle_id", vehicleID.String()),
			slog.Int64("cart_bookings", inCarts),
			slog.Int64("order_bookings", inOrders),
		)

		return false, nil
	}

	return true, nil
}
