package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableRooms(t *testing.T) {
	tests := []struct {
		name          string
		occupancyRate float64
		want          int
	}{
		{name: "empty hotel", occupancyRate: 0, want: 100},
		{name: "full hotel", occupancyRate: 100, want: 0},
		{name: "almost full", occupancyRate: 99, want: 1},
		{name: "rounds half up", occupancyRate: 12.5, want: 88},
		{name: "rounds down", occupancyRate: 12.6, want: 87},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableRooms(tt.occupancyRate))
		})
	}
}

func TestAvailableRooms_MatchesFormulaForAllWholeRates(t *testing.T) {
	for rate := 0; rate <= 100; rate++ {
		want := int(math.Round(float64(TotalRooms) * float64(100-rate) / 100))
		assert.Equal(t, want, AvailableRooms(float64(rate)), "rate %d", rate)
	}
}

func TestRoomsNeeded(t *testing.T) {
	assert.Equal(t, 1, RoomsNeeded(1))
	assert.Equal(t, 1, RoomsNeeded(2))
	assert.Equal(t, 2, RoomsNeeded(3))
	assert.Equal(t, 2, RoomsNeeded(4))
	assert.Equal(t, 3, RoomsNeeded(5))
}

func TestTruncateToDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2026, 5, 2, 1, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), TruncateToDay(in))
}
