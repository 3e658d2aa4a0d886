package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/geojson"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// RecentWindow is how far back the dashboard counts an observation as recent
const RecentWindow = 30 * 24 * time.Hour

// UnknownSpeciesName labels map features whose species reference cannot be resolved
const UnknownSpeciesName = "Unknown"

// StatsService defines the interface for aggregate reporting
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error)
	SpeciesStatistics(ctx context.Context, speciesID int64) (*dto.SpeciesStatisticsResponse, error)
	ObservationsGeoJSON(ctx context.Context, speciesID *int64) (geojson.FeatureCollection, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	speciesRepo     repositories.ISpeciesRepository
	observationRepo repositories.IObservationRepository
	clock           helpers.Clock
}

// NewStatsService creates a new stats service instance. A nil clock means the system clock.
func NewStatsService(speciesRepo repositories.ISpeciesRepository, observationRepo repositories.IObservationRepository, clock helpers.Clock) StatsService {
	if clock == nil {
		clock = helpers.SystemClock
	}
	return &statsServiceImpl{
		speciesRepo:     speciesRepo,
		observationRepo: observationRepo,
		clock:           clock,
	}
}

// Dashboard counts species, observations, recent observations and observations per species
func (s *statsServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalSpecies, err := s.speciesRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count species: %w", err)
	}

	totalObservations, err := s.observationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count observations: %w", err)
	}

	recent, err := s.observationRepo.CountSince(ctx, s.clock().Add(-RecentWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent observations: %w", err)
	}

	bySpecies, err := s.observationRepo.CountBySpecies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to group observations by species: %w", err)
	}
	if bySpecies == nil {
		bySpecies = []models.SpeciesObservationCount{}
	}

	return &dto.DashboardStatsResponse{
		TotalSpecies:        totalSpecies,
		TotalObservations:   totalObservations,
		RecentObservations:  recent,
		SpeciesObservations: bySpecies,
	}, nil
}

// SpeciesStatistics summarises the observations of one species. No trend model exists, so
// the population trend is always null.
func (s *statsServiceImpl) SpeciesStatistics(ctx context.Context, speciesID int64) (*dto.SpeciesStatisticsResponse, error) {
	species, err := s.speciesRepo.GetByID(ctx, speciesID)
	if err != nil {
		return nil, err
	}

	summary, err := s.observationRepo.SummaryForSpecies(ctx, speciesID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize species observations: %w", err)
	}

	threat := string(species.ConservationStatus)
	return &dto.SpeciesStatisticsResponse{
		SpeciesID:           species.ID,
		SpeciesName:         species.CommonName,
		TotalObservations:   summary.TotalObservations,
		LastObservationDate: summary.LastObservationDate,
		ThreatLevel:         &threat,
	}, nil
}

// ObservationsGeoJSON builds one Point feature per observation carrying both coordinates.
// Observations missing either coordinate are left out.
func (s *statsServiceImpl) ObservationsGeoJSON(ctx context.Context, speciesID *int64) (geojson.FeatureCollection, error) {
	locations, err := s.observationRepo.Locations(ctx, speciesID)
	if err != nil {
		return geojson.FeatureCollection{}, fmt.Errorf("failed to load observation locations: %w", err)
	}

	features := make([]geojson.Feature, 0, len(locations))
	for _, loc := range locations {
		if loc.Latitude == nil || loc.Longitude == nil {
			continue
		}
		features = append(features, geojson.NewFeature(geojson.NewPoint(*loc.Latitude, *loc.Longitude), locationProperties(loc)))
	}

	return geojson.NewFeatureCollection(features), nil
}

func locationProperties(loc *models.ObservationLocation) map[string]interface{} {
	name := UnknownSpeciesName
	if loc.SpeciesName != nil {
		name = *loc.SpeciesName
	}

	props := map[string]interface{}{
		"id":            loc.ID,
		"species_id":    loc.SpeciesID,
		"species_name":  name,
		"count":         loc.Count,
		"activity_type": loc.ActivityType,
		"notes":         loc.Notes,
	}
	if loc.ObservationDate != nil {
		props["observation_date"] = loc.ObservationDate.UTC().Format(time.RFC3339)
	}
	return props
}
