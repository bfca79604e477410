package repository

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRedemptionNotFound is returned when no redemption carries the code.
	ErrRedemptionNotFound = errors.New("redemption not found")
	// ErrRedemptionAlreadyUsed is returned when the code was already checked off.
	ErrRedemptionAlreadyUsed = errors.New("redemption already used")
	// ErrDuplicateQRCode is returned when a generated code collides with a stored one.
	ErrDuplicateQRCode = errors.New("duplicate qr code")
)

// RedemptionRepository defines the interface for redemption record persistence.
type RedemptionRepository interface {
	CreateDiscountRedemption(ctx context.Context, redemption *entity.DiscountRedemption) error
	CreateAmenityPurchase(ctx context.Context, purchase *entity.AmenityPurchase) error

	// ListRedemptionsByUser lists both kinds of redemption for the user, newest first.
	ListRedemptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Redemption, error)

	// FindRedemptionByQRCode looks the code up across both kinds.
	FindRedemptionByQRCode(ctx context.Context, qrCode string) (*entity.Redemption, error)

	// MarkRedemptionUsed sets an ACTIVE redemption to USED.
	MarkRedemptionUsed(ctx context.Context, kind entity.RedemptionKind, id uuid.UUID, usedAt time.Time) error
}
