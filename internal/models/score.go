package models

// RiskFactor is one qualitative hazard derived from destination and month.
type RiskFactor struct {
	Type  string `json:"type"`
	Level string `json:"level"`
	Desc  string `json:"desc"`
}

const (
	RiskLevelLow  = "Low"
	RiskLevelHigh = "High"
)

// RiskIndicator is an advisory badge shown alongside the scores.
type RiskIndicator struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// ScoreBundle aggregates the four sub-scores and their qualitative labels.
// All sub-scores are integers in [0, 100]; Overall is their weighted blend.
type ScoreBundle struct {
	BudgetScore     int `json:"budget_score"`
	ExperienceScore int `json:"experience_score"`
	TimeScore       int `json:"time_score"`
	RiskScore       int `json:"risk_score"`
	Overall         int `json:"overall"`

	ExperienceLabel string `json:"experience_label"`
	ExperienceColor string `json:"experience_color"`
	TimeLabel       string `json:"time_label"`
	TimeColor       string `json:"time_color"`

	AvgDailyTransitHours float64 `json:"avg_daily_transit_hours"`

	RiskFactors []RiskFactor    `json:"risk_factors"`
	Indicators  []RiskIndicator `json:"indicators"`
}
