package planner

import (
	"sort"

	"github.com/eyesofbug/VoyageIQ/internal/models"
	"go.uber.org/zap"
)

// BuildItinerary selects and routes attractions for one destination across
// the requested number of days. An unknown destination yields an empty
// itinerary, never an error.
func (p *Planner) BuildItinerary(destination string, interests []string, pace models.Pace, days int, group models.GroupType) []models.ItineraryDay {
	pool := p.catalog.AttractionPool(destination)
	if len(pool) == 0 {
		p.log.Debug("no attractions resolved for destination", zap.String("destination", destination))
		return nil
	}

	// Interests narrow the pool, but never to nothing: an over-specific
	// filter falls back to the full pool.
	if len(interests) > 0 {
		var filtered []models.Attraction
		for _, a := range pool {
			if a.HasAnyTag(interests) {
				filtered = append(filtered, a)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}

	// Shuffle before ranking so equal-popularity rows rotate between runs.
	pool = append([]models.Attraction(nil), pool...)
	p.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].PopularityScore > pool[j].PopularityScore })

	target := dailyTarget(group, pace)
	areas := p.shuffledAreas(pool)
	used := make(map[string]bool)

	itinerary := make([]models.ItineraryDay, 0, days)
	for d := 1; d <= days; d++ {
		if len(areas) == 0 {
			areas = p.shuffledAreas(pool)
		}
		area := areas[0]
		areas = areas[1:]

		candidates := dayCandidates(pool, area, used, target)
		selection := routeNearestNeighbor(candidates, target)

		slots := make([]models.ActivitySlot, 0, len(selection))
		for idx, a := range selection {
			used[a.Name] = true
			slots = append(slots, models.ActivitySlot{
				Time:     slotLabel(idx),
				Activity: a.Name,
				Cost:     a.AvgCostPerPerson,
				Duration: a.AvgTimeHours,
				Lat:      a.Latitude,
				Lon:      a.Longitude,
			})
		}
		itinerary = append(itinerary, models.ItineraryDay{Day: d, Area: area, Activities: slots})
	}
	return itinerary
}

// dailyTarget is the per-day activity count: the group's base density at
// Fast pace, one less otherwise, never below one.
func dailyTarget(group models.GroupType, pace models.Pace) int {
	target := models.ProfileFor(group).Density
	if pace != models.PaceFast {
		target--
	}
	if target < 1 {
		target = 1
	}
	return target
}

func (p *Planner) shuffledAreas(pool []models.Attraction) []string {
	seen := make(map[string]bool)
	var areas []string
	for _, a := range pool {
		if !seen[a.Area] {
			seen[a.Area] = true
			areas = append(areas, a.Area)
		}
	}
	p.rng.Shuffle(len(areas), func(i, j int) { areas[i], areas[j] = areas[j], areas[i] })
	return areas
}

// dayCandidates prefers unused attractions within the day's area, relaxing
// to unused anywhere in the pool, then to the area's full set so repeats
// only happen once inventory is exhausted.
func dayCandidates(pool []models.Attraction, area string, used map[string]bool, target int) []models.Attraction {
	var inArea []models.Attraction
	for _, a := range pool {
		if a.Area == area && !used[a.Name] {
			inArea = append(inArea, a)
		}
	}
	if len(inArea) >= target {
		return inArea
	}

	var unused []models.Attraction
	for _, a := range pool {
		if !used[a.Name] {
			unused = append(unused, a)
		}
	}
	if len(unused) > 0 {
		return unused
	}

	var full []models.Attraction
	for _, a := range pool {
		if a.Area == area {
			full = append(full, a)
		}
	}
	return full
}

// routeNearestNeighbor orders candidates geographically: seed with the
// highest-popularity candidate, then repeatedly append the nearest
// unselected one. Intentionally a greedy heuristic, not an exact solver.
func routeNearestNeighbor(candidates []models.Attraction, target int) []models.Attraction {
	if len(candidates) == 0 {
		return nil
	}

	remaining := append([]models.Attraction(nil), candidates...)
	selection := []models.Attraction{remaining[0]}
	remaining = remaining[1:]

	for len(selection) < target && len(remaining) > 0 {
		last := selection[len(selection)-1]
		nearest := 0
		nearestDist := Haversine(last.Location(), remaining[0].Location())
		for i := 1; i < len(remaining); i++ {
			if d := Haversine(last.Location(), remaining[i].Location()); d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}
		selection = append(selection, remaining[nearest])
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}
	return selection
}

func slotLabel(idx int) string {
	if idx < len(models.TimeSlots) {
		return models.TimeSlots[idx]
	}
	return models.TimeSlotEveningFlex
}
