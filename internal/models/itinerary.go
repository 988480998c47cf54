package models

// ActivitySlot is one scheduled entry within an itinerary day. Meal slots
// carry no coordinates and are excluded from routing and optimization.
type ActivitySlot struct {
	Time      string  `json:"time"`
	Activity  string  `json:"activity"`
	Cost      float64 `json:"cost"`
	Duration  float64 `json:"duration"`
	Lat       float64 `json:"lat,omitempty"`
	Lon       float64 `json:"lon,omitempty"`
	IsMeal    bool    `json:"is_meal,omitempty"`
	Optimized bool    `json:"optimized,omitempty"`
}

func (s ActivitySlot) Location() Location {
	return Location{Lat: s.Lat, Lon: s.Lon}
}

// ItineraryDay is one day of a built plan. TransitInfo is only set on the
// first day of a leg in multi-city plans.
type ItineraryDay struct {
	Day         int            `json:"day"`
	Area        string         `json:"area"`
	Activities  []ActivitySlot `json:"activities"`
	TransitInfo string         `json:"transit_info,omitempty"`
}

// NonMealCount returns the number of activity slots that are not meals.
func (d ItineraryDay) NonMealCount() int {
	count := 0
	for _, slot := range d.Activities {
		if !slot.IsMeal {
			count++
		}
	}
	return count
}
