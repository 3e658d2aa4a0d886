package models

import "time"

// Activity is a planned or executed conservation action for a species
type Activity struct {
	ID             int64  `db:"id" json:"id"`
	SpeciesID      int64  `db:"species_id" json:"species_id"`
	AssignedUserID *int64 `db:"assigned_user_id" json:"assigned_user_id"`

	ActivityType ActivityType `db:"activity_type" json:"activity_type"`
	Title        string       `db:"title" json:"title"`
	Description  *string      `db:"description" json:"description"`

	PlannedStartDate *time.Time `db:"planned_start_date" json:"planned_start_date"`
	PlannedEndDate   *time.Time `db:"planned_end_date" json:"planned_end_date"`
	ActualStartDate  *time.Time `db:"actual_start_date" json:"actual_start_date"`
	ActualEndDate    *time.Time `db:"actual_end_date" json:"actual_end_date"`

	Status   ActivityStatus   `db:"status" json:"status"`
	Priority ActivityPriority `db:"priority" json:"priority"`

	Latitude    *float64 `db:"latitude" json:"latitude"`
	Longitude   *float64 `db:"longitude" json:"longitude"`
	AreaCovered *float64 `db:"area_covered" json:"area_covered"` // km²

	SuccessIndicators *string  `db:"success_indicators" json:"success_indicators"`
	ChallengesFaced   *string  `db:"challenges_faced" json:"challenges_faced"`
	Recommendations   *string  `db:"recommendations" json:"recommendations"`
	BudgetAllocated   *float64 `db:"budget_allocated" json:"budget_allocated"`
	BudgetSpent       *float64 `db:"budget_spent" json:"budget_spent"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
