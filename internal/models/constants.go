package models

// Canonical time windows assigned positionally to a day's activity slots.
// Slots beyond the fourth get the evening flex label.
var TimeSlots = []string{
	"09:00 AM - 11:30 AM",
	"11:45 AM - 01:00 PM",
	"02:45 PM - 05:00 PM",
	"05:30 PM - 07:30 PM",
}

const (
	TimeSlotEveningFlex = "Evening Flex"
	TimeSlotLunch       = "01:00 PM - 02:30 PM"
	TimeSlotDinner      = "08:00 PM - 09:30 PM"

	LunchCost     = 800.0
	DinnerCost    = 1200.0
	MealDuration  = 1.5
	LunchPosition = 2
)

// Fallback constants applied when a reference row is missing. Lookups never
// fail; they degrade to these documented defaults.
const (
	DefaultDestination      = "Kerala"
	DefaultHotelPrice       = 5000.0
	DefaultGroupHotelPrice  = 3000.0
	DefaultActivityCost     = 1000.0
	DefaultVehicleCapacity  = 12
	DefaultVehicleDayCost   = 4500.0
	DefaultSeasonMultiplier = 1.0
)

const (
	VehicleBus     = "Bus"
	VehicleShuttle = "Tempo Traveler"
)

// Budget model constants.
const (
	FoodPerDayStandard      = 1500.0
	FoodPerDayBudget        = 800.0
	TransportPerDayStandard = 2500.0
	TransportPerDayBudget   = 1000.0
	GroupFoodPerDayStandard = 1200.0
	GroupFoodPerDayBudget   = 700.0
	ContingencyRate         = 0.10
	StaffLodgingPremium     = 1.25
	BulkActivityDiscount    = 0.85
	BulkDiscountThreshold   = 20
	BusThreshold            = 25
	StudentsPerRoom         = 4
	StaffPerRoom            = 2
)

// Breakdown category labels.
const (
	CategoryAccommodation = "Accommodation"
	CategoryFood          = "Food & Dining"
	CategoryGroupFood     = "Food"
	CategoryTransport     = "Local Transport"
	CategoryGroupTransit  = "Transport"
	CategoryActivities    = "Activities"
	CategoryBuffer        = "Safety Buffer (10%)"
)

// Status labels.
const (
	StatusOptimal        = "Optimal"
	StatusReviewRequired = "Review Required"
	StatusOptimizedMatch = "Optimized Match"
	StatusBudgetOK       = "Budget OK"
	StatusOverLimit      = "Over Limit"
)
