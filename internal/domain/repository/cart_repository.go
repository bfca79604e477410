package repository

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when the user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartAlreadyExists is returned when a concurrent request created the cart first.
	ErrCartAlreadyExists = errors.New("cart already exists")
	// ErrCartItemNotFound is returned when a cart item is not found in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindCartByUserID retrieves the user's cart with its items.
	FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// CreateCart persists an empty cart.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// UpsertItem inserts the item or, when (cart, type, item) already exists, overwrites
	// quantity, price, dates and additional info. The stored row is returned.
	UpsertItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)

	// RemoveItem deletes a cart item by its row ID and returns it.
	RemoveItem(ctx context.Context, cartID, cartItemID uuid.UUID) (*entity.CartItem, error)

	// ClearItems deletes every item in the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error

	// CountOverlappingVehicleItems counts VEHICLE items for the vehicle whose date range
	// intersects [from, to], ignoring items in excludeCartID.
	CountOverlappingVehicleItems(ctx context.Context, vehicleID uuid.UUID, from, to time.Time, excludeCartID uuid.UUID) (int64, error)
}
