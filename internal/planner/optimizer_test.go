package planner

import (
	"math/rand"
	"testing"

	"github.com/eyesofbug/VoyageIQ/internal/catalog"
	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optimizerPlanner() *Planner {
	attractions := []models.Attraction{
		{Name: "Royal Cruise", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic", "Water"}, AvgTimeHours: 3, AvgCostPerPerson: 6000, PopularityScore: 90},
		{Name: "Sea Deck", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic", "Water"}, AvgTimeHours: 2, AvgCostPerPerson: 5000, PopularityScore: 80},
		{Name: "Cliff Edge", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic", "Water"}, AvgTimeHours: 2, AvgCostPerPerson: 5200, PopularityScore: 81},
		{Name: "Gold Spa", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Luxury"}, AvgTimeHours: 2, AvgCostPerPerson: 5500, PopularityScore: 85},
		{Name: "Temple Rock", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic", "Water"}, AvgTimeHours: 2, AvgCostPerPerson: 4500, PopularityScore: 99},
		{Name: "Lake Loop", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic", "Water"}, AvgTimeHours: 2, AvgCostPerPerson: 500, PopularityScore: 60},
		{Name: "River Walk", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Water", "Scenic"}, AvgTimeHours: 1.5, AvgCostPerPerson: 400, PopularityScore: 70},
		{Name: "Hill View", State: "Kerala", City: "Optima", Area: "Bay", Tags: []string{"Scenic"}, AvgTimeHours: 2, AvgCostPerPerson: 300, PopularityScore: 95},
	}
	cat := catalog.New(attractions, nil, nil, nil)
	return New(cat, WithRand(rand.New(rand.NewSource(1))))
}

func slotFor(name string, cost float64) models.ActivitySlot {
	return models.ActivitySlot{Time: models.TimeSlots[0], Activity: name, Cost: cost}
}

func TestOptimizeBudgetSwapsByOverlapThenPopularity(t *testing.T) {
	p := optimizerPlanner()

	days := []models.ItineraryDay{{
		Day:        1,
		Area:       "Bay",
		Activities: []models.ActivitySlot{slotFor("Royal Cruise", 6000)},
	}}

	out, swaps := p.OptimizeBudget(days, 10000, PerItemCeiling(models.TierStandard), "Optima")
	require.Len(t, swaps, 1)

	// Temple Rock is cheaper than the original but over the 4000 ceiling;
	// among the full-overlap survivors River Walk wins on popularity, and
	// Hill View's single-tag overlap never beats them.
	assert.Equal(t, "Day 1: Royal Cruise → River Walk (Saved ₹5600)", swaps[0])
	act := out[0].Activities[0]
	assert.Equal(t, "River Walk", act.Activity)
	assert.Equal(t, 400.0, act.Cost)
	assert.True(t, act.Optimized)
	assert.Equal(t, models.TimeSlots[0], act.Time)
}

func TestOptimizeBudgetCapsSwapsPerDay(t *testing.T) {
	p := optimizerPlanner()

	days := []models.ItineraryDay{{
		Day:  1,
		Area: "Bay",
		Activities: []models.ActivitySlot{
			slotFor("Royal Cruise", 6000),
			slotFor("Sea Deck", 5000),
			slotFor("Cliff Edge", 5200),
		},
	}}

	out, swaps := p.OptimizeBudget(days, 10000, PerItemCeiling(models.TierStandard), "Optima")
	assert.Len(t, swaps, 2)
	assert.True(t, out[0].Activities[0].Optimized)
	assert.True(t, out[0].Activities[1].Optimized)
	assert.Equal(t, "Cliff Edge", out[0].Activities[2].Activity)
	assert.False(t, out[0].Activities[2].Optimized)
}

func TestOptimizeBudgetSkipsMealsAndAffordableSlots(t *testing.T) {
	p := optimizerPlanner()

	days := []models.ItineraryDay{{
		Day:  1,
		Area: "Bay",
		Activities: []models.ActivitySlot{
			{Time: models.TimeSlotLunch, Activity: "🍱 Lunch: Local Food in Bay", Cost: 5000, IsMeal: true},
			slotFor("Hill View", 300),
		},
	}}

	out, swaps := p.OptimizeBudget(days, 10000, PerItemCeiling(models.TierStandard), "Optima")
	assert.Empty(t, swaps)
	assert.Equal(t, days[0].Activities, out[0].Activities)
}

func TestOptimizeBudgetNoQualifyingSubstitute(t *testing.T) {
	p := optimizerPlanner()

	// Gold Spa shares no tag with anything cheaper.
	days := []models.ItineraryDay{{
		Day:        1,
		Area:       "Bay",
		Activities: []models.ActivitySlot{slotFor("Gold Spa", 5500)},
	}}

	out, swaps := p.OptimizeBudget(days, 10000, PerItemCeiling(models.TierStandard), "Optima")
	assert.Empty(t, swaps)
	assert.Equal(t, "Gold Spa", out[0].Activities[0].Activity)
	assert.False(t, out[0].Activities[0].Optimized)
}

func TestPerItemCeiling(t *testing.T) {
	assert.Equal(t, 2000.0, PerItemCeiling(models.TierBudget))
	assert.Equal(t, 4000.0, PerItemCeiling(models.TierStandard))
	assert.Equal(t, 4000.0, PerItemCeiling(models.TierLuxury))
}
