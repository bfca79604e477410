package usecase

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput is trusted to carry a total consistent with what was bought.
type CreateOrderInput struct {
	TotalAmount    decimal.Decimal
	OrderType      entity.ItemType
	ItemID         *uuid.UUID
	Quantity       int
	StartDate      *time.Time
	EndDate        *time.Time
	AdditionalInfo map[string]any
	PaymentMethod  string
	Discount       decimal.Decimal

	// Lines are the booked items. When empty, a single line is derived from
	// ItemID, Quantity and the dates.
	Lines []*entity.OrderItem

	// ClearCartID, when set, empties that cart in the same transaction that stores the order.
	ClearCartID uuid.UUID
}

// OrderUsecase settles purchases into orders.
type OrderUsecase interface {
	// CreateOrder persists the order. A positive discount is paid for with
	// floor(discount * 10) tokens burnt from the user's wallet.
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// CancelOrder cancels a confirmed order of the user.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
