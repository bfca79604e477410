package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HotelModel is the GORM-specific struct for the 'hotels' table.
type HotelModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code                string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name                string          `gorm:"type:varchar(255);not null"`
	City                string          `gorm:"type:varchar(128);index"`
	Address             string          `gorm:"type:varchar(255)"`
	Stars               int             `gorm:"not null;default:0"`
	PricePerNight       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RecyclingRate       float64         `gorm:"not null;default:0"`
	RenewableEnergyRate float64         `gorm:"not null;default:0"`
	WasteReductionRate  float64         `gorm:"not null;default:0"`
	EcoScore            int             `gorm:"not null;default:0"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (HotelModel) TableName() string {
	return "hotels"
}

// HotelOccupancyModel is the GORM-specific struct for the 'hotel_occupancies' table.
type HotelOccupancyModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	HotelID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hotel_occupancy_day"`
	Date          time.Time `gorm:"not null;uniqueIndex:idx_hotel_occupancy_day"`
	OccupancyRate float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HotelOccupancyModel) TableName() string {
	return "hotel_occupancies"
}

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code        string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	VehicleType string          `gorm:"type:varchar(32);not null"`
	Seats       int             `gorm:"not null;default:1"`
	PricePerDay decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EcoScore    int             `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// RouteModel is the GORM-specific struct for the 'routes' table.
type RouteModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code          string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Origin        string          `gorm:"type:varchar(128)"`
	Destination   string          `gorm:"type:varchar(128)"`
	DistanceKm    float64         `gorm:"not null;default:0"`
	TransportMode string          `gorm:"type:varchar(32)"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EcoScore      int             `gorm:"not null;default:0"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
type ServiceModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Category  string          `gorm:"type:varchar(64)"`
	Provider  string          `gorm:"type:varchar(128)"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
