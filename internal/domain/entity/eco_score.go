package entity

import (
	"math"
	"strings"
)

const defaultModeEcoScore = 50

var modeEcoScores = map[string]int{
	"BICYCLE":  100,
	"WALK":     100,
	"E_BIKE":   95,
	"ELECTRIC": 85,
	"TRAIN":    80,
	"BUS":      70,
	"HYBRID":   65,
	"PETROL":   35,
	"DIESEL":   30,
}

// HotelEcoScore derives a 0-100 sustainability rating from the hotel's metrics.
// Presentation only.
func HotelEcoScore(recyclingRate, renewableEnergyRate, wasteReductionRate float64) int {
	score := 0.4*recyclingRate + 0.4*renewableEnergyRate + 0.2*wasteReductionRate

	return clampScore(int(math.Round(score)))
}

// ModeEcoScore rates a vehicle type or route transport mode.
func ModeEcoScore(mode string) int {
	key := strings.ToUpper(strings.TrimSpace(mode))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	if score, ok := modeEcoScores[key]; ok {
		return score
	}

	return defaultModeEcoScore
}

func clampScore(score int) int {
	return max(0, min(100, score))
}
