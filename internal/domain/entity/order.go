package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokensPerEuro is the fixed conversion rate between a euro of discount and tokens.
const TokensPerEuro = 10

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is an immutable snapshot of a completed purchase. Only Status changes afterwards.
type Order struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Discount       decimal.Decimal `json:"discount"`
	TokensUsed     int64           `json:"tokensUsed"`
	BurnTxHash     string          `json:"burnTxHash,omitempty"`
	OrderType      ItemType        `json:"orderType"`
	ItemID         *uuid.UUID      `json:"itemId,omitempty"` // Nil for MULTIPLE orders.
	Quantity       int             `json:"quantity"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	AdditionalInfo map[string]any  `json:"additionalInfo,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	Status         OrderStatus     `json:"status"`
	Items          []*OrderItem    `json:"items,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// OrderItem is one booked line of an order. Vehicle lines of live orders hold the vehicle.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"orderId"`
	ItemType  ItemType        `json:"itemType"`
	ItemID    uuid.UUID       `json:"itemId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
}

var maxTokens = decimal.NewFromInt(math.MaxInt64)

// TokensForDiscount returns floor(discount * TokensPerEuro). ok is false when the
// token count does not fit in an int64.
func TokensForDiscount(discount decimal.Decimal) (tokens int64, ok bool) {
	if !discount.IsPositive() {
		return 0, true
	}

	scaled := discount.Mul(decimal.NewFromInt(TokensPerEuro)).Floor()
	if scaled.GreaterThan(maxTokens) {
		return 0, false
	}

	return scaled.IntPart(), true
}
