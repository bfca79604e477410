package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountModel is the GORM-specific struct for the 'discounts' table.
type DiscountModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code          string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	TokenCost     int64           `gorm:"not null"`
	DiscountType  string          `gorm:"type:varchar(16);not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValidFrom     time.Time       `gorm:"not null"`
	ValidUntil    time.Time       `gorm:"not null"`
	MaxUses       *int
	UsedCount     int  `gorm:"not null;default:0"`
	IsActive      bool `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}

// AmenityModel is the GORM-specific struct for the 'amenities' table.
type AmenityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	TokenCost   int64     `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	MaxQuantity *int
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}
