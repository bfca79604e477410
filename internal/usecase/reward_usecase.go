package usecase

import (
	"context"

	"greenlake/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionResult is returned by a successful redemption.
type RedemptionResult struct {
	Success    bool   `json:"success"`
	QRCode     string `json:"qrCode"`
	TokensPaid int64  `json:"tokensPaid"`
}

// RewardUsecase redeems token-funded offers.
type RewardUsecase interface {
	// RedeemDiscount validates the discount, reserves a use, burns its token cost and
	// issues a redemption code.
	RedeemDiscount(ctx context.Context, userID, discountID uuid.UUID) (*RedemptionResult, error)

	// PurchaseAmenity burns tokenCost * quantity and issues a redemption code.
	PurchaseAmenity(ctx context.Context, userID, amenityID uuid.UUID, quantity int) (*RedemptionResult, error)

	ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*entity.Redemption, error)

	// RedemptionQRCode renders one of the user's codes as a PNG.
	RedemptionQRCode(ctx context.Context, userID uuid.UUID, qrCode string) ([]byte, error)

	// UseRedemption checks a code off. Each code can be used once.
	UseRedemption(ctx context.Context, qrCode string) (*entity.Redemption, error)
}
