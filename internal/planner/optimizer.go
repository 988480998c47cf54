package planner

import (
	"fmt"
	"sort"

	"github.com/eyesofbug/VoyageIQ/internal/models"
	"go.uber.org/zap"
)

// maxSwapsPerDay caps substitutions per day regardless of any remaining
// budget deficit; an optimized plan may still be over budget.
const maxSwapsPerDay = 2

// PerItemCeiling is the per-activity cost ceiling the optimizer enforces
// for a travel tier.
func PerItemCeiling(tier models.TravelTier) float64 {
	if tier == models.TierBudget {
		return 2000
	}
	return 4000
}

// OptimizeBudget replaces over-ceiling activities with cheaper alternatives
// from the destination pool that share at least one tag with the original,
// preferring higher tag overlap, then higher popularity. Returns the new
// itinerary and a description of each swap.
func (p *Planner) OptimizeBudget(itinerary []models.ItineraryDay, budget, perItemLimit float64, destination string) ([]models.ItineraryDay, []string) {
	pool := p.catalog.AttractionPool(destination)

	var swaps []string
	out := make([]models.ItineraryDay, 0, len(itinerary))

	for _, day := range itinerary {
		newActs := make([]models.ActivitySlot, 0, len(day.Activities))
		daySwaps := 0

		for _, act := range day.Activities {
			if act.IsMeal || act.Cost <= perItemLimit || daySwaps >= maxSwapsPerDay {
				newActs = append(newActs, act)
				continue
			}

			origTags := make(map[string]bool)
			if orig, ok := p.catalog.AttractionByName(act.Activity); ok {
				for _, t := range orig.Tags {
					origTags[t] = true
				}
			}

			alt, ok := bestAlternative(pool, act, origTags, perItemLimit)
			if !ok {
				newActs = append(newActs, act)
				continue
			}

			swaps = append(swaps, fmt.Sprintf("Day %d: %s → %s (Saved ₹%d)",
				day.Day, act.Activity, alt.Name, int(act.Cost-alt.AvgCostPerPerson)))
			newActs = append(newActs, models.ActivitySlot{
				Time:      act.Time,
				Activity:  alt.Name,
				Cost:      alt.AvgCostPerPerson,
				Duration:  alt.AvgTimeHours,
				Lat:       alt.Latitude,
				Lon:       alt.Longitude,
				Optimized: true,
			})
			daySwaps++
		}

		out = append(out, models.ItineraryDay{
			Day:         day.Day,
			Area:        day.Area,
			Activities:  newActs,
			TransitInfo: day.TransitInfo,
		})
	}

	if len(swaps) > 0 {
		p.log.Info("budget optimization applied", zap.Int("swaps", len(swaps)))
	}
	return out, swaps
}

// bestAlternative ranks strictly-cheaper, at-or-under-ceiling candidates by
// tag overlap with the original, then popularity. No tags on the original
// means no safe substitution.
func bestAlternative(pool []models.Attraction, act models.ActivitySlot, origTags map[string]bool, limit float64) (models.Attraction, bool) {
	if len(origTags) == 0 {
		return models.Attraction{}, false
	}

	type scored struct {
		attraction models.Attraction
		overlap    int
	}
	var candidates []scored
	for _, a := range pool {
		if a.AvgCostPerPerson >= act.Cost || a.AvgCostPerPerson > limit {
			continue
		}
		overlap := a.TagOverlap(origTags)
		if overlap == 0 {
			continue
		}
		candidates = append(candidates, scored{a, overlap})
	}
	if len(candidates) == 0 {
		return models.Attraction{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		return candidates[i].attraction.PopularityScore > candidates[j].attraction.PopularityScore
	})
	return candidates[0].attraction, true
}
