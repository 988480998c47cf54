package planner

import (
	"fmt"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// InjectMeals adds a fixed lunch slot after the first two activities and a
// dinner slot at the end of every day. Meal slots carry no coordinates and
// are ignored by routing, optimization and transit scoring.
func (p *Planner) InjectMeals(itinerary []models.ItineraryDay) []models.ItineraryDay {
	for i := range itinerary {
		area := itinerary[i].Area

		lunch := models.ActivitySlot{
			Time:     models.TimeSlotLunch,
			Activity: fmt.Sprintf("🍱 Lunch: Local Food in %s", area),
			Cost:     models.LunchCost,
			Duration: models.MealDuration,
			IsMeal:   true,
		}
		dinner := models.ActivitySlot{
			Time:     models.TimeSlotDinner,
			Activity: fmt.Sprintf("🍽️ Dinner: %s Cuisine Night", area),
			Cost:     models.DinnerCost,
			Duration: models.MealDuration,
			IsMeal:   true,
		}

		acts := itinerary[i].Activities
		pos := models.LunchPosition
		if pos > len(acts) {
			pos = len(acts)
		}
		acts = append(acts, models.ActivitySlot{})
		copy(acts[pos+1:], acts[pos:])
		acts[pos] = lunch
		itinerary[i].Activities = append(acts, dinner)
	}
	return itinerary
}
