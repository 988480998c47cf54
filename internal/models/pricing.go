package models

// HotelPriceRow holds per-night city price aggregates for the three travel tiers.
type HotelPriceRow struct {
	City             string  `json:"city"`
	State            string  `json:"state"`
	BudgetPerNight   float64 `json:"budget_per_night"`
	StandardPerNight float64 `json:"standard_per_night"`
	LuxuryPerNight   float64 `json:"luxury_per_night"`
}

func (h HotelPriceRow) PricePerNight(tier TravelTier) float64 {
	switch tier {
	case TierBudget:
		return h.BudgetPerNight
	case TierLuxury:
		return h.LuxuryPerNight
	default:
		return h.StandardPerNight
	}
}

// VehicleSpec describes one hireable vehicle class for group transport.
type VehicleSpec struct {
	Vehicle        string  `json:"vehicle"`
	Capacity       int     `json:"capacity"`
	BaseCostPerDay float64 `json:"base_cost_per_day"`
}

// SeasonalityRow maps a state to its peak and off season months and the
// cost multipliers applied during those windows.
type SeasonalityRow struct {
	State          string
	PeakMonths     []string
	OffMonths      []string
	PeakMultiplier float64
	OffMultiplier  float64
}
