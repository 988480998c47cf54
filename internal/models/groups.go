package models

type GroupType string

const (
	GroupSolo    GroupType = "Solo"
	GroupCouple  GroupType = "Couple"
	GroupFriends GroupType = "Friends"
	GroupFamily  GroupType = "Family"
	GroupCollege GroupType = "College Group"
)

type Pace string

const (
	PaceRelaxed  Pace = "Relaxed"
	PaceModerate Pace = "Moderate"
	PaceFast     Pace = "Fast"
)

type TravelTier string

const (
	TierBudget   TravelTier = "Budget"
	TierStandard TravelTier = "Standard"
	TierLuxury   TravelTier = "Luxury"
)

// GroupProfile drives per-day activity density, the commute time multiplier
// and the interest boost weights used by the experience score.
type GroupProfile struct {
	Density        int
	TimeMultiplier float64
	PrefBoost      map[string]float64
}

var groupProfiles = map[GroupType]GroupProfile{
	GroupSolo:    {Density: 4, TimeMultiplier: 1.0, PrefBoost: map[string]float64{}},
	GroupCouple:  {Density: 3, TimeMultiplier: 1.1, PrefBoost: map[string]float64{"Scenic": 1.5, "Relaxation": 1.5}},
	GroupFriends: {Density: 4, TimeMultiplier: 1.0, PrefBoost: map[string]float64{"Adventure": 1.5, "Nightlife": 1.5}},
	GroupFamily:  {Density: 3, TimeMultiplier: 1.3, PrefBoost: map[string]float64{"Culture": 1.5, "Leisure": 1.5}},
	GroupCollege: {Density: 4, TimeMultiplier: 1.1, PrefBoost: map[string]float64{"Adventure": 1.5, "Budget": 1.5}},
}

// ProfileFor returns the intelligence profile for a group type. Unknown group
// types get a neutral profile rather than an error.
func ProfileFor(group GroupType) GroupProfile {
	if p, ok := groupProfiles[group]; ok {
		return p
	}
	return GroupProfile{Density: 3, TimeMultiplier: 1.0, PrefBoost: map[string]float64{}}
}
