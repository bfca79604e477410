package usecase

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemInput describes an item to put in the cart.
type AddCartItemInput struct {
	ItemType       entity.ItemType
	ItemID         uuid.UUID
	Quantity       int
	Price          decimal.Decimal // Precomputed line total.
	StartDate      time.Time
	EndDate        *time.Time // Defaults to StartDate.
	AdditionalInfo map[string]any
}

// CheckoutInput carries what the checkout flow needs beyond the cart contents.
type CheckoutInput struct {
	PaymentMethod string
	Discount      decimal.Decimal
}

// CartUsecase manages the per-user cart.
type CartUsecase interface {
	// GetCart returns the user's cart, creating it when missing.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem checks availability for hotels and vehicles and upserts the item.
	AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (*entity.CartItem, error)

	// RemoveItem removes a cart item by its row ID.
	RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) (*entity.CartItem, error)

	ClearCart(ctx context.Context, userID uuid.UUID) error

	// Checkout turns the cart into an order and then clears the cart.
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*entity.Order, error)
}
