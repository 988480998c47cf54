package planner

import (
	"math"
	"strings"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

const earthRadiusKm = 6371.0 // Earth's radius in kilometers

const (
	cityAvgSpeedKmh      = 30.0
	interCityAvgSpeedKmh = 60.0
	trafficBufferMins    = 15.0
)

// Haversine returns the great-circle distance between two points in km.
func Haversine(loc1, loc2 models.Location) float64 {
	lat1 := degreesToRadians(loc1.Lat)
	lon1 := degreesToRadians(loc1.Lon)
	lat2 := degreesToRadians(loc2.Lat)
	lon2 := degreesToRadians(loc2.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// TravelTimeMinutes estimates intra-city transit between two points at the
// average city speed plus a fixed traffic buffer.
func TravelTimeMinutes(loc1, loc2 models.Location) float64 {
	dist := Haversine(loc1, loc2)
	return (dist/cityAvgSpeedKmh)*60 + trafficBufferMins
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// SeasonalMultiplier looks up the cost inflation factor for a destination
// and travel month. The month is matched by its 3-letter prefix against the
// state's peak list first, then the off list. Unknown destinations, states
// and months all resolve to the neutral multiplier.
func (p *Planner) SeasonalMultiplier(destination, month string) float64 {
	state := p.catalog.StateOf(destination)
	if state == "" {
		return models.DefaultSeasonMultiplier
	}

	row, ok := p.catalog.SeasonalityFor(state)
	if !ok {
		return models.DefaultSeasonMultiplier
	}

	prefix := month
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	if monthListMatches(row.PeakMonths, prefix) {
		return row.PeakMultiplier
	}
	if monthListMatches(row.OffMonths, prefix) {
		return row.OffMultiplier
	}
	return models.DefaultSeasonMultiplier
}

func monthListMatches(months []string, prefix string) bool {
	for _, m := range months {
		if strings.HasPrefix(m, prefix) {
			return true
		}
	}
	return false
}
