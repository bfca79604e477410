package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountRedemptionModel is the GORM-specific struct for the 'discount_redemptions' table.
type DiscountRedemptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DiscountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokensPaid int64     `gorm:"not null"`
	QRCode     string    `gorm:"column:qr_code;type:varchar(64);not null;uniqueIndex"`
	BurnTxHash string    `gorm:"type:varchar(128)"`
	Status     string    `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	CreatedAt  time.Time
	UsedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountRedemptionModel) TableName() string {
	return "discount_redemptions"
}

// AmenityPurchaseModel is the GORM-specific struct for the 'amenity_purchases' table.
type AmenityPurchaseModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	AmenityID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null;default:1"`
	TokensPaid int64     `gorm:"not null"`
	QRCode     string    `gorm:"column:qr_code;type:varchar(64);not null;uniqueIndex"`
	BurnTxHash string    `gorm:"type:varchar(128)"`
	Status     string    `gorm:"type:varchar(16);not null;default:'ACTIVE'"`
	CreatedAt  time.Time
	UsedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityPurchaseModel) TableName() string {
	return "amenity_purchases"
}

// All lists every model, in dependency order, for schema tooling and tests.
func All() []any {
	return []any{
		&UserModel{},
		&HotelModel{},
		&HotelOccupancyModel{},
		&VehicleModel{},
		&RouteModel{},
		&ServiceModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&DiscountModel{},
		&AmenityModel{},
		&DiscountRedemptionModel{},
		&AmenityPurchaseModel{},
	}
}
