package repository

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrDiscountNotFound is returned when a discount is not found.
	ErrDiscountNotFound = errors.New("discount not found")
	// ErrAmenityNotFound is returned when an amenity is not found.
	ErrAmenityNotFound = errors.New("amenity not found")
)

// OfferRepository defines the interface for discount and amenity persistence.
type OfferRepository interface {
	FindDiscountByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	FindAmenityByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)

	// ListActiveDiscounts lists active discounts whose window contains now.
	ListActiveDiscounts(ctx context.Context, now time.Time) ([]*entity.Discount, error)
	ListActiveAmenities(ctx context.Context) ([]*entity.Amenity, error)

	// ReserveDiscountUse atomically increments used_count when the discount is active
	// and below its cap. It reports false when no use was left.
	ReserveDiscountUse(ctx context.Context, id uuid.UUID) (bool, error)

	// ReleaseDiscountUse gives back a use taken by ReserveDiscountUse.
	ReleaseDiscountUse(ctx context.Context, id uuid.UUID) error

	// Upserts used by the dataset ingestor. UpsertDiscount never changes used_count.
	UpsertDiscount(ctx context.Context, discount *entity.Discount) error
	UpsertAmenity(ctx context.Context, amenity *entity.Amenity) error
}
