package repositories

import (
	"context"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

var waterPointTable = table[models.WaterPoint]{
	name:   "water_points",
	entity: "water point",
	columns: []string{
		"id", "name", "latitude", "longitude", "water_type", "status", "capacity", "depth",
		"ph_level", "conductivity", "last_quality_check", "installation_date",
		"last_maintenance", "maintenance_frequency", "species_usage", "human_usage",
		"notes", "created_at", "updated_at",
	},
	notFound: apperrors.ErrWaterPointNotFound,
}

// IWaterPointRepository defines the interface for water point database operations
type IWaterPointRepository interface {
	Create(ctx context.Context, waterPoint *models.WaterPoint) (*models.WaterPoint, error)
	GetByID(ctx context.Context, id int64) (*models.WaterPoint, error)
	List(ctx context.Context, filter dto.WaterPointFilter, window helpers.Window) ([]*models.WaterPoint, error)
	Update(ctx context.Context, waterPoint *models.WaterPoint) (*models.WaterPoint, error)
	Delete(ctx context.Context, id int64) error
}

// WaterPointRepository handles water point database operations
type WaterPointRepository struct {
	db *db.PostgresDB
}

// NewWaterPointRepository creates a new WaterPointRepository
func NewWaterPointRepository(database *db.PostgresDB) *WaterPointRepository {
	return &WaterPointRepository{db: database}
}

func waterPointValues(w *models.WaterPoint) map[string]interface{} {
	return map[string]interface{}{
		"name":                  w.Name,
		"latitude":              w.Latitude,
		"longitude":             w.Longitude,
		"water_type":            w.WaterType,
		"status":                w.Status,
		"capacity":              w.Capacity,
		"depth":                 w.Depth,
		"ph_level":              w.PhLevel,
		"conductivity":          w.Conductivity,
		"last_quality_check":    w.LastQualityCheck,
		"installation_date":     w.InstallationDate,
		"last_maintenance":      w.LastMaintenance,
		"maintenance_frequency": w.MaintenanceFrequency,
		"species_usage":         w.SpeciesUsage,
		"human_usage":           w.HumanUsage,
		"notes":                 w.Notes,
	}
}

// Create inserts a water point and returns the stored row
func (r *WaterPointRepository) Create(ctx context.Context, waterPoint *models.WaterPoint) (*models.WaterPoint, error) {
	return waterPointTable.insert(ctx, r.db.Pool, waterPointValues(waterPoint))
}

// GetByID retrieves a water point by ID
func (r *WaterPointRepository) GetByID(ctx context.Context, id int64) (*models.WaterPoint, error) {
	return waterPointTable.get(ctx, r.db.Pool, id)
}

// List retrieves water points ordered by id
func (r *WaterPointRepository) List(ctx context.Context, filter dto.WaterPointFilter, window helpers.Window) ([]*models.WaterPoint, error) {
	where := eqFilter{}.add("status", filter.Status, filter.Status != nil)
	return waterPointTable.list(ctx, r.db.Pool, where.sqlizer(), window, "id ASC")
}

// Update overwrites every mutable column of the water point
func (r *WaterPointRepository) Update(ctx context.Context, waterPoint *models.WaterPoint) (*models.WaterPoint, error) {
	return waterPointTable.update(ctx, r.db.Pool, waterPoint.ID, waterPointValues(waterPoint))
}

// Delete removes a water point
func (r *WaterPointRepository) Delete(ctx context.Context, id int64) error {
	return waterPointTable.delete(ctx, r.db.Pool, id)
}
