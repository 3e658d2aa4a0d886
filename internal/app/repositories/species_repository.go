package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

var speciesTable = table[models.Species]{
	name:   "species",
	entity: "species",
	columns: []string{
		"id", "common_name", "scientific_name", "category", "conservation_status",
		"description", "habitat_description", "threats", "conservation_actions",
		"population_estimate", "created_at", "updated_at",
	},
	notFound: apperrors.ErrSpeciesNotFound,
}

// ISpeciesRepository defines the interface for species database operations
type ISpeciesRepository interface {
	Create(ctx context.Context, species *models.Species) (*models.Species, error)
	GetByID(ctx context.Context, id int64) (*models.Species, error)
	List(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error)
	Update(ctx context.Context, species *models.Species) (*models.Species, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// Import
	ExistsByScientificName(ctx context.Context, scientificName string) (bool, error)
	CreateMany(ctx context.Context, species []*models.Species) error
}

// SpeciesRepository handles species database operations
type SpeciesRepository struct {
	db *db.PostgresDB
}

// NewSpeciesRepository creates a new SpeciesRepository
func NewSpeciesRepository(database *db.PostgresDB) *SpeciesRepository {
	return &SpeciesRepository{db: database}
}

func speciesValues(s *models.Species) map[string]interface{} {
	return map[string]interface{}{
		"common_name":          s.CommonName,
		"scientific_name":      s.ScientificName,
		"category":             s.Category,
		"conservation_status":  s.ConservationStatus,
		"description":          s.Description,
		"habitat_description":  s.HabitatDescription,
		"threats":              s.Threats,
		"conservation_actions": s.ConservationActions,
		"population_estimate":  s.PopulationEstimate,
	}
}

// Create inserts a species and returns the stored row
func (r *SpeciesRepository) Create(ctx context.Context, species *models.Species) (*models.Species, error) {
	return speciesTable.insert(ctx, r.db.Pool, speciesValues(species))
}

// GetByID retrieves a species by ID
func (r *SpeciesRepository) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	return speciesTable.get(ctx, r.db.Pool, id)
}

// List retrieves species ordered by id
func (r *SpeciesRepository) List(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error) {
	where := eqFilter{}.
		add("category", filter.Category, filter.Category != nil).
		add("conservation_status", filter.ConservationStatus, filter.ConservationStatus != nil)
	return speciesTable.list(ctx, r.db.Pool, where.sqlizer(), window, "id ASC")
}

// Update overwrites every mutable column of the species
func (r *SpeciesRepository) Update(ctx context.Context, species *models.Species) (*models.Species, error) {
	return speciesTable.update(ctx, r.db.Pool, species.ID, speciesValues(species))
}

// Delete removes a species
func (r *SpeciesRepository) Delete(ctx context.Context, id int64) error {
	return speciesTable.delete(ctx, r.db.Pool, id)
}

// Count returns the number of stored species
func (r *SpeciesRepository) Count(ctx context.Context) (int64, error) {
	return speciesTable.count(ctx, r.db.Pool, nil)
}

// ExistsByScientificName reports whether a species with the given scientific name is stored
func (r *SpeciesRepository) ExistsByScientificName(ctx context.Context, scientificName string) (bool, error) {
	return speciesTable.exists(ctx, r.db.Pool, squirrel.Eq{"scientific_name": scientificName})
}

// CreateMany inserts every species in one transaction. Nothing is stored if any insert fails.
func (r *SpeciesRepository) CreateMany(ctx context.Context, species []*models.Species) error {
	if len(species) == 0 {
		return nil
	}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, s := range species {
			created, err := speciesTable.insert(ctx, tx, speciesValues(s))
			if err != nil {
				return fmt.Errorf("species %q: %w", s.ScientificName, err)
			}
			*s = *created
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("count", len(species)).Msg("Error committing species batch")
		return err
	}

	return nil
}
