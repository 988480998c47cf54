package planner

import (
	"fmt"

	"github.com/eyesofbug/VoyageIQ/internal/models"
)

// CollegeBudgetParams are the inputs for a college group estimate.
type CollegeBudgetParams struct {
	Students      int
	Staff         int
	Drivers       int
	Days          int
	TravelTier    models.TravelTier
	Month         string
	ActivityCount int
	Budget        float64
	Destination   string
}

// EstimateCollegeGroupBudget prices a college trip: shared rooms with a
// staff lodging premium, hired vehicles sized to the head count, bulk
// activity discounts, and affordability scored against the per-student
// cost rather than the total.
func (p *Planner) EstimateCollegeGroupBudget(params CollegeBudgetParams) models.BudgetResult {
	participants := params.Students + params.Staff + params.Drivers
	multiplier := p.SeasonalMultiplier(params.Destination, params.Month)
	days := float64(params.Days)

	baseHotel := models.DefaultGroupHotelPrice
	if row, ok := p.catalog.HotelRow(params.Destination); ok {
		baseHotel = row.PricePerNight(params.TravelTier)
	}
	staffHotel := baseHotel * models.StaffLodgingPremium
	baseHotel *= multiplier
	staffHotel *= multiplier

	studentRooms := ceilDiv(params.Students, models.StudentsPerRoom)
	staffRooms := ceilDiv(params.Staff, models.StaffPerRoom)
	accommodation := float64(studentRooms)*baseHotel*days + float64(staffRooms)*staffHotel*days

	vehicleType := models.VehicleShuttle
	if participants > models.BusThreshold {
		vehicleType = models.VehicleBus
	}
	spec, ok := p.catalog.VehicleByType(vehicleType)
	if !ok || spec.Capacity <= 0 {
		spec = models.VehicleSpec{
			Vehicle:        vehicleType,
			Capacity:       models.DefaultVehicleCapacity,
			BaseCostPerDay: models.DefaultVehicleDayCost,
		}
	}
	vehicleCount := ceilDiv(participants, spec.Capacity)
	transport := float64(vehicleCount) * spec.BaseCostPerDay * days

	perPersonFood := models.GroupFoodPerDayStandard
	if params.TravelTier == models.TierBudget {
		perPersonFood = models.GroupFoodPerDayBudget
	}
	perPersonFood *= multiplier
	food := float64(participants) * perPersonFood * days

	avgFee := p.catalog.AverageActivityCost(params.Destination)
	activity := float64(participants) * avgFee * float64(params.ActivityCount) * multiplier
	if participants > models.BulkDiscountThreshold {
		activity *= models.BulkActivityDiscount
	}

	subtotal := accommodation + transport + food + activity
	buffer := subtotal * models.ContingencyRate
	total := subtotal + buffer

	perStudent := 0.0
	if params.Students > 0 {
		perStudent = total / float64(params.Students)
	}
	staffCost := float64(staffRooms)*staffHotel*days +
		float64(params.Staff)*perPersonFood*days +
		float64(params.Staff)*avgFee*float64(params.ActivityCount)

	score := affordabilityScore(params.Budget, perStudent)

	status := models.StatusOverLimit
	if score >= 90 {
		status = models.StatusBudgetOK
	}

	color := "orange"
	switch {
	case score >= 90:
		color = "green"
	case score < 60:
		color = "red"
	}

	return models.BudgetResult{
		TotalEstimated:      int(total),
		PerStudentCost:      int(perStudent),
		TotalStaffCost:      int(staffCost),
		Score:               score,
		Status:              status,
		Color:               color,
		TotalParticipants:   participants,
		Vehicles:            fmt.Sprintf("%dx %s", vehicleCount, vehicleType),
		OptimizationApplied: score < 80,
		Breakdown: map[string]int{
			models.CategoryAccommodation: int(accommodation),
			models.CategoryGroupTransit:  int(transport),
			models.CategoryGroupFood:     int(food),
			models.CategoryActivities:    int(activity),
			models.CategoryBuffer:        int(buffer),
		},
	}
}

func ceilDiv(n, per int) int {
	if per <= 0 {
		return 0
	}
	return (n + per - 1) / per
}
