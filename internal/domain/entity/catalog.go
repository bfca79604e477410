package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalRooms is the fixed room count every hotel is assumed to have.
const TotalRooms = 100

// GuestsPerRoom is the fixed room occupancy used to turn a party size into rooms.
const GuestsPerRoom = 2

// Hotel is a bookable accommodation loaded from the hotels dataset.
type Hotel struct {
	ID                  uuid.UUID       `json:"id"`
	Code                string          `json:"code"` // Natural key from the dataset.
	Name                string          `json:"name"`
	City                string          `json:"city"`
	Address             string          `json:"address"`
	Stars               int             `json:"stars"`
	PricePerNight       decimal.Decimal `json:"pricePerNight"`
	RecyclingRate       float64         `json:"recyclingRate"`       // Percentage, 0 to 100.
	RenewableEnergyRate float64         `json:"renewableEnergyRate"` // Percentage, 0 to 100.
	WasteReductionRate  float64         `json:"wasteReductionRate"`  // Percentage, 0 to 100.
	EcoScore            int             `json:"ecoScore"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// HotelOccupancy is the recorded occupancy of a hotel on one day.
type HotelOccupancy struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotelId"`
	Date          time.Time `json:"date"`          // UTC midnight.
	OccupancyRate float64   `json:"occupancyRate"` // Percentage, 0 to 100.
}

// AvailableRooms projects the free rooms for the day. It is not a reservation.
func (o *HotelOccupancy) AvailableRooms() int {
	return AvailableRooms(o.OccupancyRate)
}

// Vehicle is a rentable vehicle. Each vehicle is a single unit.
type Vehicle struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	VehicleType string          `json:"vehicleType"`
	Seats       int             `json:"seats"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
	EcoScore    int             `json:"ecoScore"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Route is a scheduled transport route.
type Route struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DistanceKm    float64         `json:"distanceKm"`
	TransportMode string          `json:"transportMode"`
	Price         decimal.Decimal `json:"price"`
	EcoScore      int             `json:"ecoScore"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Service is a bookable tourism service (tour, guide, workshop...).
type Service struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Provider  string          `json:"provider"`
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
