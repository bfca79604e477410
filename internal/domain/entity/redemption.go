package entity

import (
	"time"

	"github.com/google/uuid"
)

type RedemptionStatus string

const (
	RedemptionStatusActive RedemptionStatus = "ACTIVE"
	RedemptionStatusUsed   RedemptionStatus = "USED"
)

type RedemptionKind string

const (
	RedemptionKindDiscount RedemptionKind = "DISCOUNT"
	RedemptionKindAmenity  RedemptionKind = "AMENITY"
)

// DiscountRedemption records a successful discount redemption.
type DiscountRedemption struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"userId"`
	DiscountID uuid.UUID        `json:"discountId"`
	TokensPaid int64            `json:"tokensPaid"`
	QRCode     string           `json:"qrCode"` // Globally unique, never reused.
	BurnTxHash string           `json:"burnTxHash"`
	Status     RedemptionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UsedAt     *time.Time       `json:"usedAt,omitempty"`
}

// AmenityPurchase records a successful amenity purchase.
type AmenityPurchase struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"userId"`
	AmenityID  uuid.UUID        `json:"amenityId"`
	Quantity   int              `json:"quantity"`
	TokensPaid int64            `json:"tokensPaid"`
	QRCode     string           `json:"qrCode"`
	BurnTxHash string           `json:"burnTxHash"`
	Status     RedemptionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UsedAt     *time.Time       `json:"usedAt,omitempty"`
}

// Redemption is the kind-independent view of a redemption code.
type Redemption struct {
	Kind       RedemptionKind   `json:"kind"`
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"userId"`
	OfferID    uuid.UUID        `json:"offerId"`
	TokensPaid int64            `json:"tokensPaid"`
	QRCode     string           `json:"qrCode"`
	Status     RedemptionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	UsedAt     *time.Time       `json:"usedAt,omitempty"`
}
