package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CartModel is the GORM-specific struct for the 'carts' table.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// (cart_id, item_type, item_id) is unique so re-adding an item upserts it.
type CartItemModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CartID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_item"`
	ItemType       string            `gorm:"type:varchar(16);not null;uniqueIndex:idx_cart_items_cart_item;index:idx_cart_items_item"`
	ItemID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_item;index:idx_cart_items_item"`
	Quantity       int               `gorm:"not null;default:1"`
	Price          decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	StartDate      time.Time         `gorm:"not null"`
	EndDate        time.Time         `gorm:"not null"`
	AdditionalInfo datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
