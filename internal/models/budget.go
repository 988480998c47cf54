package models

// BudgetResult is the outcome of a budget estimation. The college group
// variant additionally fills the per-student, staff and vehicle fields.
type BudgetResult struct {
	TotalEstimated      int            `json:"total_estimated"`
	Score               int            `json:"score"`
	Status              string         `json:"status"`
	Color               string         `json:"color"`
	OptimizationApplied bool           `json:"optimization_applied"`
	Breakdown           map[string]int `json:"breakdown"`

	PerStudentCost    int    `json:"per_student_cost,omitempty"`
	TotalStaffCost    int    `json:"total_staff_cost,omitempty"`
	TotalParticipants int    `json:"total_participants,omitempty"`
	Vehicles          string `json:"vehicles,omitempty"`
}
