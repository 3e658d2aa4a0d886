package repositories

import (
	"context"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

var activityTable = table[models.Activity]{
	name:   "activities",
	entity: "activity",
	columns: []string{
		"id", "species_id", "assigned_user_id", "activity_type", "title", "description",
		"planned_start_date", "planned_end_date", "actual_start_date", "actual_end_date",
		"status", "priority", "latitude", "longitude", "area_covered",
		"success_indicators", "challenges_faced", "recommendations",
		"budget_allocated", "budget_spent", "created_at", "updated_at",
	},
	notFound: apperrors.ErrActivityNotFound,
}

// IActivityRepository defines the interface for conservation activity database operations
type IActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	GetByID(ctx context.Context, id int64) (*models.Activity, error)
	List(ctx context.Context, filter dto.ActivityFilter, window helpers.Window) ([]*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db *db.PostgresDB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(database *db.PostgresDB) *ActivityRepository {
	return &ActivityRepository{db: database}
}

func activityValues(a *models.Activity) map[string]interface{} {
	return map[string]interface{}{
		"species_id":         a.SpeciesID,
		"assigned_user_id":   a.AssignedUserID,
		"activity_type":      a.ActivityType,
		"title":              a.Title,
		"description":        a.Description,
		"planned_start_date": a.PlannedStartDate,
		"planned_end_date":   a.PlannedEndDate,
		"actual_start_date":  a.ActualStartDate,
		"actual_end_date":    a.ActualEndDate,
		"status":             a.Status,
		"priority":           a.Priority,
		"latitude":           a.Latitude,
		"longitude":          a.Longitude,
		"area_covered":       a.AreaCovered,
		"success_indicators": a.SuccessIndicators,
		"challenges_faced":   a.ChallengesFaced,
		"recommendations":    a.Recommendations,
		"budget_allocated":   a.BudgetAllocated,
		"budget_spent":       a.BudgetSpent,
	}
}

// Create inserts an activity and returns the stored row
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	return activityTable.insert(ctx, r.db.Pool, activityValues(activity))
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	return activityTable.get(ctx, r.db.Pool, id)
}

// List retrieves activities ordered by id
func (r *ActivityRepository) List(ctx context.Context, filter dto.ActivityFilter, window helpers.Window) ([]*models.Activity, error) {
	where := eqFilter{}.
		add("species_id", filter.SpeciesID, filter.SpeciesID != nil).
		add("assigned_user_id", filter.AssignedUserID, filter.AssignedUserID != nil).
		add("status", filter.Status, filter.Status != nil)
	return activityTable.list(ctx, r.db.Pool, where.sqlizer(), window, "id ASC")
}

// Update overwrites every mutable column of the activity
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	return activityTable.update(ctx, r.db.Pool, activity.ID, activityValues(activity))
}

// Delete removes an activity
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	return activityTable.delete(ctx, r.db.Pool, id)
}
