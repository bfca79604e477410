package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Discount is a token-funded offer with an activation window and an optional usage cap.
type Discount struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TokenCost     int64           `json:"tokenCost"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	ValidFrom     time.Time       `json:"validFrom"`
	ValidUntil    time.Time       `json:"validUntil"`
	MaxUses       *int            `json:"maxUses,omitempty"`
	UsedCount     int             `json:"usedCount"` // Only ever changed by the atomic reserve/release pair.
	IsActive      bool            `json:"isActive"`
}

// HasRemainingUses reports whether the usage cap still allows a redemption.
func (d *Discount) HasRemainingUses() bool {
	return d.MaxUses == nil || d.UsedCount < *d.MaxUses
}

// Amenity is an item that can be bought with tokens.
type Amenity struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TokenCost   int64     `json:"tokenCost"`
	IsActive    bool      `json:"isActive"`
	MaxQuantity *int      `json:"maxQuantity,omitempty"` // Per purchase.
}

// Cost returns TokenCost * quantity. ok is false when the product does not fit in an int64.
func (a *Amenity) Cost(quantity int) (cost int64, ok bool) {
	if a.TokenCost > 0 && int64(quantity) > math.MaxInt64/a.TokenCost {
		return 0, false
	}

	return a.TokenCost * int64(quantity), true
}
