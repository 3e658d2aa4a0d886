package services

import (
	"context"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

// SpeciesService defines the interface for species operations
type SpeciesService interface {
	CreateSpecies(ctx context.Context, req *dto.CreateSpeciesRequest) (*models.Species, error)
	GetSpeciesByID(ctx context.Context, id int64) (*models.Species, error)
	ListSpecies(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error)
	UpdateSpecies(ctx context.Context, id int64, req *dto.UpdateSpeciesRequest) (*models.Species, error)
	DeleteSpecies(ctx context.Context, id int64) error
}

// speciesServiceImpl implements the SpeciesService interface
type speciesServiceImpl struct {
	speciesRepo repositories.ISpeciesRepository
}

// NewSpeciesService creates a new species service instance
func NewSpeciesService(speciesRepo repositories.ISpeciesRepository) SpeciesService {
	return &speciesServiceImpl{
		speciesRepo: speciesRepo,
	}
}

// CreateSpecies stores a new species. Scientific name uniqueness is enforced by the store.
func (s *speciesServiceImpl) CreateSpecies(ctx context.Context, req *dto.CreateSpeciesRequest) (*models.Species, error) {
	species, err := s.speciesRepo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create species: %w", err)
	}

	logger.Info().Int64("speciesID", species.ID).Str("scientificName", species.ScientificName).Msg("Species created")
	return species, nil
}

// GetSpeciesByID retrieves a species by ID
func (s *speciesServiceImpl) GetSpeciesByID(ctx context.Context, id int64) (*models.Species, error) {
	return s.speciesRepo.GetByID(ctx, id)
}

// ListSpecies retrieves a page of species
func (s *speciesServiceImpl) ListSpecies(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error) {
	return s.speciesRepo.List(ctx, filter, window)
}

// UpdateSpecies merges the request into the stored species
func (s *speciesServiceImpl) UpdateSpecies(ctx context.Context, id int64, req *dto.UpdateSpeciesRequest) (*models.Species, error) {
	species, err := s.speciesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(species)

	updated, err := s.speciesRepo.Update(ctx, species)
	if err != nil {
		return nil, fmt.Errorf("failed to update species: %w", err)
	}
	return updated, nil
}

// DeleteSpecies removes a species
func (s *speciesServiceImpl) DeleteSpecies(ctx context.Context, id int64) error {
	if err := s.speciesRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("speciesID", id).Msg("Species deleted")
	return nil
}
