package planner

import (
	"fmt"
	"math"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// Weights of the four sub-scores in the overall blend.
const (
	budgetWeight     = 0.3
	experienceWeight = 0.3
	timeWeight       = 0.2
	riskWeight       = 0.2
)

// ExperienceScore measures how well the scheduled activities cover the
// requested interests, weighted by the group's preference boosts. An empty
// interest set is a neutral full match.
func (p *Planner) ExperienceScore(itinerary []models.ItineraryDay, interests []string, group models.GroupType) (int, string, string) {
	if len(interests) == 0 {
		return 100, "Neutral Match", "blue"
	}

	boost := models.ProfileFor(group).PrefBoost
	seen := make(map[string]bool)
	for _, day := range itinerary {
		for _, act := range day.Activities {
			if act.IsMeal {
				continue
			}
			if a, ok := p.catalog.AttractionByName(act.Activity); ok {
				for _, t := range a.Tags {
					seen[t] = true
				}
			}
		}
	}

	matches := 0.0
	for _, interest := range interests {
		if !seen[interest] {
			continue
		}
		b := 1.0
		if v, ok := boost[interest]; ok {
			b = v
		}
		matches += b
	}

	score := int(math.Round(matches / float64(len(interests)) * 100))
	if score > 100 {
		score = 100
	}
	if score > 80 {
		return score, "High Presence", "green"
	}
	return score, "Fair Match", "blue"
}

// TimeEfficiency scores the plan's daily transit overhead: sequential
// haversine travel times between non-meal activities plus a fixed start/end
// factor, scaled by the group's time multiplier. Also returns the average
// daily transit in hours.
func (p *Planner) TimeEfficiency(itinerary []models.ItineraryDay, group models.GroupType) (int, string, string, float64) {
	if len(itinerary) == 0 {
		return 100, "Optimal", "green", 0.0
	}

	mult := models.ProfileFor(group).TimeMultiplier
	totalMins := 0.0
	for _, day := range itinerary {
		var acts []models.ActivitySlot
		for _, a := range day.Activities {
			if !a.IsMeal {
				acts = append(acts, a)
			}
		}
		if len(acts) == 0 {
			totalMins += 120 * mult
			continue
		}
		mins := 90.0 // start/end factor
		for i := 0; i < len(acts)-1; i++ {
			mins += TravelTimeMinutes(acts[i].Location(), acts[i+1].Location())
		}
		totalMins += mins * mult
	}

	avgHours := totalMins / float64(len(itinerary)) / 60
	score := 100 - avgHours*15
	if score < 20 {
		score = 20
	}

	if avgHours < 3 {
		return int(score), "Highly Efficient", "green", roundTenth(avgHours)
	}
	return int(score), "Moderate", "blue", roundTenth(avgHours)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func isSummerMonth(month string) bool {
	return month == "June" || month == "July" || month == "August"
}

// EstimateRiskFactors derives qualitative hazards from the destination and
// travel month. Fixed rules; a quiet destination gets one Low entry.
func EstimateRiskFactors(destination, month string) []models.RiskFactor {
	var risks []models.RiskFactor
	if (destination == "Kerala" || destination == "Goa") && isSummerMonth(month) {
		risks = append(risks, models.RiskFactor{
			Type: "Weather", Level: models.RiskLevelHigh, Desc: "Monsoon Peak: Heavy rain hazards.",
		})
	}
	if destination == "Dubai" && isSummerMonth(month) {
		risks = append(risks, models.RiskFactor{
			Type: "Climate", Level: models.RiskLevelHigh, Desc: "Extreme Heat (>45°C). Use caution.",
		})
	}
	if len(risks) == 0 {
		risks = append(risks, models.RiskFactor{
			Type: "General", Level: models.RiskLevelLow, Desc: "Stability confirmed.",
		})
	}
	return risks
}

// RiskScore deducts a fixed penalty per High severity factor, floored at 0.
func RiskScore(risks []models.RiskFactor) int {
	high := 0
	for _, r := range risks {
		if r.Level == models.RiskLevelHigh {
			high++
		}
	}
	score := 100 - high*35
	if score < 0 {
		score = 0
	}
	return score
}

// OverallScore blends the four sub-scores with fixed weights.
func OverallScore(budgetScore, experienceScore, timeScore, riskScore int) int {
	return int(math.Round(
		float64(budgetScore)*budgetWeight +
			float64(experienceScore)*experienceWeight +
			float64(timeScore)*timeWeight +
			float64(riskScore)*riskWeight))
}

// IndicatorInput carries everything the advisory indicators inspect.
type IndicatorInput struct {
	Budget          float64
	BudgetData      models.BudgetResult
	Month           string
	Itinerary       []models.ItineraryDay
	AvgTransitHours float64
	GroupType       models.GroupType
	Students        int
	Staff           int
}

// RiskIndicators derives independent advisory badges: budget breach, peak
// season inflation, unsafe staff ratio and transit fatigue.
func (p *Planner) RiskIndicators(in IndicatorInput) []models.RiskIndicator {
	var indicators []models.RiskIndicator

	total := float64(in.BudgetData.TotalEstimated)
	perStudent := float64(in.BudgetData.PerStudentCost)
	if in.GroupType == models.GroupCollege {
		if perStudent > in.Budget {
			indicators = append(indicators, models.RiskIndicator{
				Icon: "💸", Title: "Budget Breach",
				Desc: fmt.Sprintf("Exceeds student limit by ₹%d.", int(perStudent-in.Budget)),
			})
		}
	} else if total > in.Budget {
		indicators = append(indicators, models.RiskIndicator{
			Icon: "💸", Title: "Budget Breach",
			Desc: fmt.Sprintf("Exceeds limit by ₹%d.", int(total-in.Budget)),
		})
	}

	// The first day's area stands in for the destination here.
	dest := models.DefaultDestination
	if len(in.Itinerary) > 0 && in.Itinerary[0].Area != "" {
		dest = in.Itinerary[0].Area
	}
	if p.SeasonalMultiplier(dest, in.Month) > 1.2 {
		indicators = append(indicators, models.RiskIndicator{
			Icon: "🏔️", Title: "Peak Season", Desc: "High demand inflation detected.",
		})
	}

	if in.GroupType == models.GroupCollege && in.Students > 0 &&
		float64(in.Staff)/float64(in.Students) < 1.0/15.0 {
		indicators = append(indicators, models.RiskIndicator{
			Icon: "👮", Title: "Safety Warning", Desc: "Staff ratio below 1:15 safety limit.",
		})
	}

	if in.AvgTransitHours > 4.5 {
		indicators = append(indicators, models.RiskIndicator{
			Icon: "⌛", Title: "Transit Fatigue", Desc: "Heavy travel overhead according to geo-routing.",
		})
	}

	return indicators
}

// ComputeScores derives the full score bundle for a finished plan.
func (p *Planner) ComputeScores(req models.PlanRequest, itinerary []models.ItineraryDay, budgetData models.BudgetResult) models.ScoreBundle {
	risks := EstimateRiskFactors(req.PrimaryDestination(), req.Month)

	expScore, expLabel, expColor := p.ExperienceScore(itinerary, req.Interests, req.GroupType)
	timeScore, timeLabel, timeColor, avgHours := p.TimeEfficiency(itinerary, req.GroupType)
	riskScore := RiskScore(risks)

	indicators := p.RiskIndicators(IndicatorInput{
		Budget:          req.Budget,
		BudgetData:      budgetData,
		Month:           req.Month,
		Itinerary:       itinerary,
		AvgTransitHours: avgHours,
		GroupType:       req.GroupType,
		Students:        req.Students,
		Staff:           req.Staff,
	})

	return models.ScoreBundle{
		BudgetScore:          budgetData.Score,
		ExperienceScore:      expScore,
		TimeScore:            timeScore,
		RiskScore:            riskScore,
		Overall:              OverallScore(budgetData.Score, expScore, timeScore, riskScore),
		ExperienceLabel:      expLabel,
		ExperienceColor:      expColor,
		TimeLabel:            timeLabel,
		TimeColor:            timeColor,
		AvgDailyTransitHours: avgHours,
		RiskFactors:          risks,
		Indicators:           indicators,
	}
}
