package models

import "time"

// PlanRequest carries every user-supplied parameter for one planning run.
type PlanRequest struct {
	Destinations []string   `json:"destinations"`
	Days         int        `json:"days"`
	Budget       float64    `json:"budget"`
	Month        string     `json:"month"`
	Interests    []string   `json:"interests"`
	Pace         Pace       `json:"pace"`
	TravelTier   TravelTier `json:"travel_tier"`
	GroupType    GroupType  `json:"group_type"`

	// College group logistics; ignored for other group types.
	Students int `json:"students,omitempty"`
	Staff    int `json:"staff,omitempty"`
	Drivers  int `json:"drivers,omitempty"`
}

// PrimaryDestination is the first requested destination, used for budget and
// risk lookups in multi-city plans.
func (r PlanRequest) PrimaryDestination() string {
	if len(r.Destinations) == 0 {
		return DefaultDestination
	}
	return r.Destinations[0]
}

// TripPlan is the complete output of one planning run, ready for the output
// sinks. Plans are request-scoped and discarded after emission.
type TripPlan struct {
	ID          string         `json:"id"`
	Request     PlanRequest    `json:"request"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Budget      BudgetResult   `json:"budget"`
	Scores      ScoreBundle    `json:"scores"`
	Swaps       []string       `json:"swaps,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// TotalActivities counts scheduled non-meal slots across the itinerary.
func (p TripPlan) TotalActivities() int {
	total := 0
	for _, day := range p.Itinerary {
		total += day.NonMealCount()
	}
	return total
}
