package dto

import (
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreateActivityRequest is the body of POST /activities
type CreateActivityRequest struct {
	SpeciesID      int64               `json:"species_id" binding:"required,min=1"`
	AssignedUserID *int64              `json:"assigned_user_id" binding:"omitempty,min=1"`
	ActivityType   models.ActivityType `json:"activity_type" binding:"required,oneof=suivi_populations lutte_braconnage gestion_habitat implication_communautes restauration recherche"`
	Title          string              `json:"title" binding:"required,max=200" example:"Recensement aérien"`
	Description    *string             `json:"description"`

	PlannedStartDate *time.Time `json:"planned_start_date"`
	PlannedEndDate   *time.Time `json:"planned_end_date"`

	Status   *models.ActivityStatus   `json:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Priority *models.ActivityPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`

	Latitude        *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	AreaCovered     *float64 `json:"area_covered" binding:"omitempty,min=0"`
	BudgetAllocated *float64 `json:"budget_allocated" binding:"omitempty,min=0"`
}

// ToModel builds a new activity, planned with medium priority unless stated otherwise
func (r *CreateActivityRequest) ToModel() *models.Activity {
	return &models.Activity{
		SpeciesID:        r.SpeciesID,
		AssignedUserID:   r.AssignedUserID,
		ActivityType:     r.ActivityType,
		Title:            r.Title,
		Description:      r.Description,
		PlannedStartDate: r.PlannedStartDate,
		PlannedEndDate:   r.PlannedEndDate,
		Status:           valueOr(r.Status, models.ActivityPlanned),
		Priority:         valueOr(r.Priority, models.PriorityMedium),
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		AreaCovered:      r.AreaCovered,
		BudgetAllocated:  r.BudgetAllocated,
	}
}

// UpdateActivityRequest is the body of PUT /activities/{id}
type UpdateActivityRequest struct {
	SpeciesID      *int64               `json:"species_id" binding:"omitempty,min=1"`
	AssignedUserID *int64               `json:"assigned_user_id" binding:"omitempty,min=1"`
	ActivityType   *models.ActivityType `json:"activity_type" binding:"omitempty,oneof=suivi_populations lutte_braconnage gestion_habitat implication_communautes restauration recherche"`
	Title          *string              `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string              `json:"description"`

	PlannedStartDate *time.Time `json:"planned_start_date"`
	PlannedEndDate   *time.Time `json:"planned_end_date"`
	ActualStartDate  *time.Time `json:"actual_start_date"`
	ActualEndDate    *time.Time `json:"actual_end_date"`

	Status   *models.ActivityStatus   `json:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	Priority *models.ActivityPriority `json:"priority" binding:"omitempty,oneof=low medium high critical"`

	Latitude    *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	AreaCovered *float64 `json:"area_covered" binding:"omitempty,min=0"`

	SuccessIndicators *string  `json:"success_indicators"`
	ChallengesFaced   *string  `json:"challenges_faced"`
	Recommendations   *string  `json:"recommendations"`
	BudgetAllocated   *float64 `json:"budget_allocated" binding:"omitempty,min=0"`
	BudgetSpent       *float64 `json:"budget_spent" binding:"omitempty,min=0"`
}

// Apply merges the request into an existing activity
func (r *UpdateActivityRequest) Apply(a *models.Activity) {
	patch(&a.SpeciesID, r.SpeciesID)
	patchOptional(&a.AssignedUserID, r.AssignedUserID)
	patch(&a.ActivityType, r.ActivityType)
	patch(&a.Title, r.Title)
	patchOptional(&a.Description, r.Description)
	patchOptional(&a.PlannedStartDate, r.PlannedStartDate)
	patchOptional(&a.PlannedEndDate, r.PlannedEndDate)
	patchOptional(&a.ActualStartDate, r.ActualStartDate)
	patchOptional(&a.ActualEndDate, r.ActualEndDate)
	patch(&a.Status, r.Status)
	patch(&a.Priority, r.Priority)
	patchOptional(&a.Latitude, r.Latitude)
	patchOptional(&a.Longitude, r.Longitude)
	patchOptional(&a.AreaCovered, r.AreaCovered)
	patchOptional(&a.SuccessIndicators, r.SuccessIndicators)
	patchOptional(&a.ChallengesFaced, r.ChallengesFaced)
	patchOptional(&a.Recommendations, r.Recommendations)
	patchOptional(&a.BudgetAllocated, r.BudgetAllocated)
	patchOptional(&a.BudgetSpent, r.BudgetSpent)
}

// ActivityFilter narrows GET /activities
type ActivityFilter struct {
	SpeciesID      *int64
	AssignedUserID *int64
	Status         *models.ActivityStatus
}
