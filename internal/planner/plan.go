package planner

import (
	"sort"
	"time"

	"github.com/eyesofbug/VoyageIQ/internal/models"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

// BuildPlan runs the full pipeline for one request: itinerary construction
// (multi-city aware), meal injection, budget estimation, conditional swap
// optimization, then scoring.
func (p *Planner) BuildPlan(req models.PlanRequest) *models.TripPlan {
	var itinerary []models.ItineraryDay
	if len(req.Destinations) > 1 {
		itinerary = p.BuildMultiCityItinerary(req.Destinations, req.Days, req.Interests, req.Pace, req.GroupType)
	} else {
		itinerary = p.BuildItinerary(req.PrimaryDestination(), req.Interests, req.Pace, req.Days, req.GroupType)
	}
	itinerary = p.InjectMeals(itinerary)

	totalActivities := 0
	for _, day := range itinerary {
		totalActivities += day.NonMealCount()
	}

	var budget models.BudgetResult
	if req.GroupType == models.GroupCollege {
		budget = p.EstimateCollegeGroupBudget(CollegeBudgetParams{
			Students:      req.Students,
			Staff:         req.Staff,
			Drivers:       req.Drivers,
			Days:          req.Days,
			TravelTier:    req.TravelTier,
			Month:         req.Month,
			ActivityCount: totalActivities,
			Budget:        req.Budget,
			Destination:   req.PrimaryDestination(),
		})
	} else {
		budget = p.EstimateBudget(BudgetParams{
			Budget:        req.Budget,
			TravelTier:    req.TravelTier,
			Days:          req.Days,
			Month:         req.Month,
			ActivityCount: totalActivities,
			GroupType:     req.GroupType,
			Destination:   req.PrimaryDestination(),
		})
	}

	var swaps []string
	if budget.OptimizationApplied {
		itinerary, swaps = p.OptimizeBudget(itinerary, req.Budget, PerItemCeiling(req.TravelTier), req.PrimaryDestination())
		if len(swaps) > 0 {
			budget.Status = models.StatusOptimizedMatch
		}
	}

	scores := p.ComputeScores(req, itinerary, budget)

	p.log.Info("plan generated",
		zap.Strings("destinations", req.Destinations),
		zap.Int("days", req.Days),
		zap.Int("activities", totalActivities),
		zap.Int("overall_score", scores.Overall))

	return &models.TripPlan{
		ID:          cuid.New(),
		Request:     req,
		Itinerary:   itinerary,
		Budget:      budget,
		Scores:      scores,
		Swaps:       swaps,
		GeneratedAt: time.Now().UTC(),
	}
}

// Recommendation pairs a candidate city with the plan it would produce.
type Recommendation struct {
	City string
	Plan *models.TripPlan
}

// RankDestinations evaluates the request against every city in the catalog
// and ranks the results by overall score. onCity, if set, is called after
// each city is evaluated.
func (p *Planner) RankDestinations(req models.PlanRequest, onCity func(city string)) []Recommendation {
	cities := p.catalog.Cities()
	recs := make([]Recommendation, 0, len(cities))
	for _, city := range cities {
		cityReq := req
		cityReq.Destinations = []string{city}
		recs = append(recs, Recommendation{City: city, Plan: p.BuildPlan(cityReq)})
		if onCity != nil {
			onCity(city)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Plan.Scores.Overall > recs[j].Plan.Scores.Overall
	})
	return recs
}
