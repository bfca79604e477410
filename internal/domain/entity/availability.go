package entity

import (
	"math"
	"time"
)

// AvailableRooms returns round(TotalRooms * (100 - occupancyRate) / 100).
func AvailableRooms(occupancyRate float64) int {
	return int(math.Round(float64(TotalRooms) * (100 - occupancyRate) / 100))
}

// RoomsNeeded returns ceil(guests / GuestsPerRoom).
func RoomsNeeded(guests int) int {
	return (guests + GuestsPerRoom - 1) / GuestsPerRoom
}

// TruncateToDay returns t at UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
