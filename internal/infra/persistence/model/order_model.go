package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	TotalAmount    decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Discount       decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	TokensUsed     int64             `gorm:"not null;default:0"`
	BurnTxHash     string            `gorm:"type:varchar(128)"`
	OrderType      string            `gorm:"type:varchar(16);not null;index:idx_orders_item"`
	ItemID         *uuid.UUID        `gorm:"type:uuid;index:idx_orders_item"`
	Quantity       int               `gorm:"not null;default:1"`
	StartDate      *time.Time
	EndDate        *time.Time
	AdditionalInfo datatypes.JSONMap `gorm:"type:jsonb"`
	PaymentMethod  string            `gorm:"type:varchar(32)"`
	Status         string            `gorm:"type:varchar(16);not null;default:'CONFIRMED'"`
	Items          []*OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemType  string          `gorm:"type:varchar(16);not null;index:idx_order_items_item"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_item"`
	Quantity  int             `gorm:"not null;default:1"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate time.Time       `gorm:"not null"`
	EndDate   time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
