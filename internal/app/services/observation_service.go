package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

// ObservationService defines the interface for observation operations
type ObservationService interface {
	CreateObservation(ctx context.Context, observerID int64, req *dto.CreateObservationRequest) (*models.Observation, error)
	GetObservationByID(ctx context.Context, id int64) (*models.Observation, error)
	ListObservations(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error)
	UpdateObservation(ctx context.Context, id int64, req *dto.UpdateObservationRequest) (*models.Observation, error)
	DeleteObservation(ctx context.Context, id int64) error
}

// observationServiceImpl implements the ObservationService interface
type observationServiceImpl struct {
	observationRepo repositories.IObservationRepository
	speciesRepo     repositories.ISpeciesRepository
}

// NewObservationService creates a new observation service instance
func NewObservationService(observationRepo repositories.IObservationRepository, speciesRepo repositories.ISpeciesRepository) ObservationService {
	return &observationServiceImpl{
		observationRepo: observationRepo,
		speciesRepo:     speciesRepo,
	}
}

// ensureSpeciesExists turns a dangling species reference into a field error before the insert
func (s *observationServiceImpl) ensureSpeciesExists(ctx context.Context, speciesID int64) error {
	if _, err := s.speciesRepo.GetByID(ctx, speciesID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewInvalidReferenceError("species_id")
		}
		return err
	}
	return nil
}

// CreateObservation records a sighting attributed to observerID
func (s *observationServiceImpl) CreateObservation(ctx context.Context, observerID int64, req *dto.CreateObservationRequest) (*models.Observation, error) {
	if err := s.ensureSpeciesExists(ctx, req.SpeciesID); err != nil {
		return nil, err
	}

	observation, err := s.observationRepo.Create(ctx, req.ToModel(observerID))
	if err != nil {
		return nil, fmt.Errorf("failed to create observation: %w", err)
	}

	logger.Info().
		Int64("observationID", observation.ID).
		Int64("speciesID", observation.SpeciesID).
		Int64("observerID", observerID).
		Msg("Observation recorded")
	return observation, nil
}

// GetObservationByID retrieves an observation by ID
func (s *observationServiceImpl) GetObservationByID(ctx context.Context, id int64) (*models.Observation, error) {
	return s.observationRepo.GetByID(ctx, id)
}

// ListObservations retrieves a page of observations
func (s *observationServiceImpl) ListObservations(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error) {
	return s.observationRepo.List(ctx, filter, window)
}

// UpdateObservation merges the request into the stored observation
func (s *observationServiceImpl) UpdateObservation(ctx context.Context, id int64, req *dto.UpdateObservationRequest) (*models.Observation, error) {
	observation, err := s.observationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SpeciesID != nil && *req.SpeciesID != observation.SpeciesID {
		if err := s.ensureSpeciesExists(ctx, *req.SpeciesID); err != nil {
			return nil, err
		}
	}

	req.Apply(observation)

	updated, err := s.observationRepo.Update(ctx, observation)
	if err != nil {
		return nil, fmt.Errorf("failed to update observation: %w", err)
	}
	return updated, nil
}

// DeleteObservation removes an observation
func (s *observationServiceImpl) DeleteObservation(ctx context.Context, id int64) error {
	return s.observationRepo.Delete(ctx, id)
}
