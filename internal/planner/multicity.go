package planner

import (
	"fmt"
	"math"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// BuildMultiCityItinerary splits the trip across destinations as evenly as
// possible (earlier legs absorb the remainder), builds each leg, renumbers
// days into one continuous sequence and annotates each later leg's first
// day with an inter-city transit estimate.
func (p *Planner) BuildMultiCityItinerary(destinations []string, days int, interests []string, pace models.Pace, group models.GroupType) []models.ItineraryDay {
	if len(destinations) == 0 {
		return nil
	}

	perCity := days / len(destinations)
	remaining := days % len(destinations)

	var itinerary []models.ItineraryDay
	currentDay := 1
	for i, city := range destinations {
		count := perCity
		if i < remaining {
			count++
		}

		leg := p.BuildItinerary(city, interests, pace, count, group)
		if i > 0 && len(leg) > 0 {
			leg[0].TransitInfo = p.transitNote(destinations[i-1], city)
		}
		for j := range leg {
			leg[j].Day = currentDay
			currentDay++
		}
		itinerary = append(itinerary, leg...)
	}
	return itinerary
}

// transitNote estimates the hop between two cities using their first
// attractions as coordinate proxies at the inter-city average speed. A
// generic label is used when either city has no resolvable coordinates.
func (p *Planner) transitNote(prev, curr string) string {
	prevLoc, prevOK := p.firstCityLocation(prev)
	currLoc, currOK := p.firstCityLocation(curr)
	if !prevOK || !currOK {
		return fmt.Sprintf("🚗 Transit: %s → %s", prev, curr)
	}

	dist := Haversine(prevLoc, currLoc)
	travelH := math.Round(dist/interCityAvgSpeedKmh*10) / 10
	return fmt.Sprintf("✈️ Transit: %s → %s (%dkm, ~%.1fh)", prev, curr, int(dist), travelH)
}

func (p *Planner) firstCityLocation(city string) (models.Location, bool) {
	for _, a := range p.catalog.Attractions {
		if a.City == city {
			return a.Location(), true
		}
	}
	return models.Location{}, false
}
