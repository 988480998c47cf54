package planner

import (
	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// BudgetParams are the inputs for an individual or small-group estimate.
type BudgetParams struct {
	Budget        float64
	TravelTier    models.TravelTier
	Days          int
	Month         string
	ActivityCount int
	GroupType     models.GroupType
	Destination   string
}

// EstimateBudget prices a trip for an individual or small group: tiered
// lodging with seasonal scaling, fixed daily food and transport baselines,
// group multipliers and a contingency buffer, scored against the budget.
func (p *Planner) EstimateBudget(params BudgetParams) models.BudgetResult {
	baseHotel := models.DefaultHotelPrice
	if row, ok := p.catalog.HotelRowForDestination(params.Destination); ok {
		baseHotel = row.PricePerNight(params.TravelTier)
	}

	days := float64(params.Days)
	multiplier := p.SeasonalMultiplier(params.Destination, params.Month)
	hotelTotal := baseHotel * days * multiplier

	foodTotal := models.FoodPerDayStandard * days
	transportTotal := models.TransportPerDayStandard * days
	if params.TravelTier == models.TierBudget {
		foodTotal = models.FoodPerDayBudget * days
		transportTotal = models.TransportPerDayBudget * days
	}

	switch params.GroupType {
	case models.GroupCouple:
		hotelTotal *= 1.2
	case models.GroupFriends:
		hotelTotal *= 0.8
	case models.GroupFamily:
		transportTotal *= 1.4
	case models.GroupCollege:
		hotelTotal *= 0.7
	}

	activityTotal := float64(params.ActivityCount) * p.catalog.AverageActivityCost(params.Destination) * multiplier

	subtotal := hotelTotal + foodTotal + transportTotal + activityTotal
	buffer := subtotal * models.ContingencyRate
	total := subtotal + buffer

	score := affordabilityScore(params.Budget, total)

	status := models.StatusReviewRequired
	if score >= 90 {
		status = models.StatusOptimal
	}

	return models.BudgetResult{
		TotalEstimated:      int(total),
		Score:               score,
		Status:              status,
		Color:               budgetColor(score),
		OptimizationApplied: score < 80,
		Breakdown: map[string]int{
			models.CategoryAccommodation: int(hotelTotal),
			models.CategoryFood:          int(foodTotal),
			models.CategoryTransport:     int(transportTotal),
			models.CategoryActivities:    int(activityTotal),
			models.CategoryBuffer:        int(buffer),
		},
	}
}

// affordabilityScore is 100 when the budget covers the cost, else the
// floored percentage of cost the budget covers.
func affordabilityScore(budget, cost float64) int {
	if budget >= cost {
		return 100
	}
	return int(budget / cost * 100)
}

func budgetColor(score int) string {
	switch {
	case score >= 90:
		return "green"
	case score >= 80:
		return "blue"
	case score >= 60:
		return "orange"
	default:
		return "red"
	}
}
