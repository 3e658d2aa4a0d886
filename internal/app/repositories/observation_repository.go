package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

var observationTable = table[models.Observation]{
	name:   "observations",
	entity: "observation",
	columns: []string{
		"id", "species_id", "observer_id", "latitude", "longitude", "accuracy",
		"observation_date", "count", "activity_type", "weather_conditions",
		"temperature", "humidity", "behavior_notes", "health_status", "age_group",
		"sex", "notes", "photo_urls", "verified", "created_at", "updated_at",
	},
	notFound: apperrors.ErrObservationNotFound,
}

// IObservationRepository defines the interface for observation database operations
type IObservationRepository interface {
	Create(ctx context.Context, observation *models.Observation) (*models.Observation, error)
	GetByID(ctx context.Context, id int64) (*models.Observation, error)
	List(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error)
	Update(ctx context.Context, observation *models.Observation) (*models.Observation, error)
	Delete(ctx context.Context, id int64) error

	// Reporting
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountBySpecies(ctx context.Context) ([]models.SpeciesObservationCount, error)
	SummaryForSpecies(ctx context.Context, speciesID int64) (*models.SpeciesObservationSummary, error)
	Locations(ctx context.Context, speciesID *int64) ([]*models.ObservationLocation, error)
}

// ObservationRepository handles observation database operations
type ObservationRepository struct {
	db *db.PostgresDB
}

// NewObservationRepository creates a new ObservationRepository
func NewObservationRepository(database *db.PostgresDB) *ObservationRepository {
	return &ObservationRepository{db: database}
}

func observationValues(o *models.Observation) map[string]interface{} {
	return map[string]interface{}{
		"species_id":         o.SpeciesID,
		"observer_id":        o.ObserverID,
		"latitude":           o.Latitude,
		"longitude":          o.Longitude,
		"accuracy":           o.Accuracy,
		"observation_date":   o.ObservationDate,
		"count":              o.Count,
		"activity_type":      o.ActivityType,
		"weather_conditions": o.WeatherConditions,
		"temperature":        o.Temperature,
		"humidity":           o.Humidity,
		"behavior_notes":     o.BehaviorNotes,
		"health_status":      o.HealthStatus,
		"age_group":          o.AgeGroup,
		"sex":                o.Sex,
		"notes":              o.Notes,
		"photo_urls":         o.PhotoURLs,
		"verified":           o.Verified,
	}
}

// Create inserts an observation and returns the stored row
func (r *ObservationRepository) Create(ctx context.Context, observation *models.Observation) (*models.Observation, error) {
	return observationTable.insert(ctx, r.db.Pool, observationValues(observation))
}

// GetByID retrieves an observation by ID
func (r *ObservationRepository) GetByID(ctx context.Context, id int64) (*models.Observation, error) {
	return observationTable.get(ctx, r.db.Pool, id)
}

// List retrieves observations ordered by id
func (r *ObservationRepository) List(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error) {
	where := eqFilter{}.
		add("species_id", filter.SpeciesID, filter.SpeciesID != nil).
		add("observer_id", filter.ObserverID, filter.ObserverID != nil).
		add("verified", filter.Verified, filter.Verified != nil)
	return observationTable.list(ctx, r.db.Pool, where.sqlizer(), window, "id ASC")
}

// Update overwrites every mutable column of the observation
func (r *ObservationRepository) Update(ctx context.Context, observation *models.Observation) (*models.Observation, error) {
	return observationTable.update(ctx, r.db.Pool, observation.ID, observationValues(observation))
}

// Delete removes an observation
func (r *ObservationRepository) Delete(ctx context.Context, id int64) error {
	return observationTable.delete(ctx, r.db.Pool, id)
}

// Count returns the number of stored observations
func (r *ObservationRepository) Count(ctx context.Context) (int64, error) {
	return observationTable.count(ctx, r.db.Pool, nil)
}

// CountSince counts observations dated at or after since
func (r *ObservationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return observationTable.count(ctx, r.db.Pool, squirrel.GtOrEq{"observation_date": since})
}

// CountBySpecies groups observations by species. Species without observations are not returned.
func (r *ObservationRepository) CountBySpecies(ctx context.Context) ([]models.SpeciesObservationCount, error) {
	sql, args, err := psql.Select("s.id AS species_id", "s.common_name AS species_name", "COUNT(o.id) AS count").
		From("species s").
		Join("observations o ON o.species_id = s.id").
		GroupBy("s.id", "s.common_name").
		OrderBy("count DESC", "s.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building species observation count SQL")
		return nil, fmt.Errorf("failed to build species observation count query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing species observation count query")
		return nil, fmt.Errorf("error counting observations by species: %w", err)
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SpeciesObservationCount])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning species observation counts")
		return nil, fmt.Errorf("error scanning species observation counts: %w", err)
	}

	return counts, nil
}

// SummaryForSpecies returns the observation total and latest observation date of one species
func (r *ObservationRepository) SummaryForSpecies(ctx context.Context, speciesID int64) (*models.SpeciesObservationSummary, error) {
	sql, args, err := psql.Select("COUNT(*) AS total_observations", "MAX(observation_date) AS last_observation_date").
		From(observationTable.name).
		Where(squirrel.Eq{"species_id": speciesID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build species summary query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("speciesID", speciesID).Msg("Error executing species summary query")
		return nil, fmt.Errorf("error summarizing species observations: %w", err)
	}

	summary, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.SpeciesObservationSummary])
	if err != nil {
		logger.Error().Err(err).Int64("speciesID", speciesID).Msg("Error scanning species summary")
		return nil, fmt.Errorf("error scanning species summary: %w", err)
	}

	return summary, nil
}

// Locations returns the map projection of observations, optionally restricted to one species.
// The species join is a LEFT JOIN so a dangling reference still yields a row.
func (r *ObservationRepository) Locations(ctx context.Context, speciesID *int64) ([]*models.ObservationLocation, error) {
	builder := psql.Select(
		"o.id", "o.species_id", "s.common_name AS species_name", "o.latitude", "o.longitude",
		"o.count", "o.activity_type", "o.observation_date", "o.notes",
	).
		From("observations o").
		LeftJoin("species s ON s.id = o.species_id").
		OrderBy("o.id ASC")
	if speciesID != nil {
		builder = builder.Where(squirrel.Eq{"o.species_id": *speciesID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building observation locations SQL")
		return nil, fmt.Errorf("failed to build observation locations query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing observation locations query")
		return nil, fmt.Errorf("error querying observation locations: %w", err)
	}

	locations, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.ObservationLocation])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning observation locations")
		return nil, fmt.Errorf("error scanning observation locations: %w", err)
	}

	return locations, nil
}
