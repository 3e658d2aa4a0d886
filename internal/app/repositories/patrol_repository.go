package repositories

import (
	"context"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

var patrolRouteTable = table[models.PatrolRoute]{
	name:   "patrol_routes",
	entity: "patrol route",
	columns: []string{
		"id", "name", "description", "route_geometry", "total_distance",
		"estimated_duration", "difficulty_level", "frequency", "patrol_type",
		"checkpoints", "created_at", "updated_at",
	},
	notFound: apperrors.ErrPatrolRouteNotFound,
}

var patrolLogTable = table[models.PatrolLog]{
	name:   "patrol_logs",
	entity: "patrol log",
	columns: []string{
		"id", "route_id", "ranger_id", "patrol_date", "start_time", "end_time",
		"incidents_reported", "wildlife_sightings", "illegal_activities",
		"equipment_status", "weather_conditions", "visibility", "terrain_conditions",
		"summary", "recommendations", "photos", "created_at", "updated_at",
	},
	notFound: apperrors.ErrPatrolLogNotFound,
}

// IPatrolRepository defines the interface for patrol route and patrol log database operations
type IPatrolRepository interface {
	// Routes
	CreateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error)
	GetRouteByID(ctx context.Context, id int64) (*models.PatrolRoute, error)
	ListRoutes(ctx context.Context, window helpers.Window) ([]*models.PatrolRoute, error)
	UpdateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error)
	DeleteRoute(ctx context.Context, id int64) error

	// Logs
	CreateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error)
	GetLogByID(ctx context.Context, id int64) (*models.PatrolLog, error)
	ListLogs(ctx context.Context, filter dto.PatrolLogFilter, window helpers.Window) ([]*models.PatrolLog, error)
	UpdateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error)
	DeleteLog(ctx context.Context, id int64) error
}

// PatrolRepository handles patrol route and patrol log database operations
type PatrolRepository struct {
	db *db.PostgresDB
}

// NewPatrolRepository creates a new PatrolRepository
func NewPatrolRepository(database *db.PostgresDB) *PatrolRepository {
	return &PatrolRepository{db: database}
}

func patrolRouteValues(p *models.PatrolRoute) map[string]interface{} {
	return map[string]interface{}{
		"name":               p.Name,
		"description":        p.Description,
		"route_geometry":     p.RouteGeometry,
		"total_distance":     p.TotalDistance,
		"estimated_duration": p.EstimatedDuration,
		"difficulty_level":   p.DifficultyLevel,
		"frequency":          p.Frequency,
		"patrol_type":        p.PatrolType,
		"checkpoints":        p.Checkpoints,
	}
}

func patrolLogValues(l *models.PatrolLog) map[string]interface{} {
	return map[string]interface{}{
		"route_id":           l.RouteID,
		"ranger_id":          l.RangerID,
		"patrol_date":        l.PatrolDate,
		"start_time":         l.StartTime,
		"end_time":           l.EndTime,
		"incidents_reported": l.IncidentsReported,
		"wildlife_sightings": l.WildlifeSightings,
		"illegal_activities": l.IllegalActivities,
		"equipment_status":   l.EquipmentStatus,
		"weather_conditions": l.WeatherConditions,
		"visibility":         l.Visibility,
		"terrain_conditions": l.TerrainConditions,
		"summary":            l.Summary,
		"recommendations":    l.Recommendations,
		"photos":             l.Photos,
	}
}

// CreateRoute inserts a patrol route and returns the stored row
func (r *PatrolRepository) CreateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error) {
	return patrolRouteTable.insert(ctx, r.db.Pool, patrolRouteValues(route))
}

// GetRouteByID retrieves a patrol route by ID
func (r *PatrolRepository) GetRouteByID(ctx context.Context, id int64) (*models.PatrolRoute, error) {
	return patrolRouteTable.get(ctx, r.db.Pool, id)
}

// ListRoutes retrieves patrol routes ordered by id
func (r *PatrolRepository) ListRoutes(ctx context.Context, window helpers.Window) ([]*models.PatrolRoute, error) {
	return patrolRouteTable.list(ctx, r.db.Pool, nil, window, "id ASC")
}

// UpdateRoute overwrites every mutable column of the patrol route
func (r *PatrolRepository) UpdateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error) {
	return patrolRouteTable.update(ctx, r.db.Pool, route.ID, patrolRouteValues(route))
}

// DeleteRoute removes a patrol route. Routes referenced by logs are rejected with a conflict.
func (r *PatrolRepository) DeleteRoute(ctx context.Context, id int64) error {
	return patrolRouteTable.delete(ctx, r.db.Pool, id)
}

// CreateLog inserts a patrol log and returns the stored row
func (r *PatrolRepository) CreateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error) {
	return patrolLogTable.insert(ctx, r.db.Pool, patrolLogValues(log))
}

// GetLogByID retrieves a patrol log by ID
func (r *PatrolRepository) GetLogByID(ctx context.Context, id int64) (*models.PatrolLog, error) {
	return patrolLogTable.get(ctx, r.db.Pool, id)
}

// ListLogs retrieves patrol logs, newest patrol first
func (r *PatrolRepository) ListLogs(ctx context.Context, filter dto.PatrolLogFilter, window helpers.Window) ([]*models.PatrolLog, error) {
	where := eqFilter{}.
		add("route_id", filter.RouteID, filter.RouteID != nil).
		add("ranger_id", filter.RangerID, filter.RangerID != nil)
	return patrolLogTable.list(ctx, r.db.Pool, where.sqlizer(), window, "patrol_date DESC, id DESC")
}

// UpdateLog overwrites every mutable column of the patrol log
func (r *PatrolRepository) UpdateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error) {
	return patrolLogTable.update(ctx, r.db.Pool, log.ID, patrolLogValues(log))
}

// DeleteLog removes a patrol log
func (r *PatrolRepository) DeleteLog(ctx context.Context, id int64) error {
	return patrolLogTable.delete(ctx, r.db.Pool, id)
}
