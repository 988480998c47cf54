package models

// Attraction is one row of the attractions reference table. Rows are loaded
// once at startup and never mutated afterwards.
type Attraction struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	State            string   `json:"state"`
	City             string   `json:"city"`
	Area             string   `json:"area"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Tags             []string `json:"tags"`
	AvgTimeHours     float64  `json:"avg_time_hours"`
	AvgCostPerPerson float64  `json:"avg_cost_per_person"`
	GroupFriendly    bool     `json:"group_friendly"`
	PopularityScore  float64  `json:"popularity_score"`
}

func (a Attraction) Location() Location {
	return Location{Lat: a.Latitude, Lon: a.Longitude}
}

func (a Attraction) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		for _, own := range a.Tags {
			if own == t {
				return true
			}
		}
	}
	return false
}

// TagOverlap counts how many of the given tags the attraction carries.
func (a Attraction) TagOverlap(tags map[string]bool) int {
	count := 0
	for _, t := range a.Tags {
		if tags[t] {
			count++
		}
	}
	return count
}
