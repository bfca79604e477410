package repository

import (
	"context"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when the order is not in the expected status.
	ErrOrderStatusConflict = errors.New("order status conflict")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrdersByUser lists the user's orders, newest first.
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order from one status to another, failing with
	// ErrOrderStatusConflict when the current status is not from.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// CountOverlappingVehicleOrders counts non-cancelled VEHICLE orders for the vehicle
	// whose date range intersects [from, to].
	CountOverlappingVehicleOrders(ctx context.Context, vehicleID uuid.UUID, from, to time.Time) (int64, error)
}
