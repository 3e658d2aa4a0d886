package services

import (
	"context"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/spreadsheet"
)

// ExportService builds the tabular downloads of species and observations
type ExportService interface {
	SpeciesSheet(ctx context.Context) (spreadsheet.Sheet, error)
	ObservationsSheet(ctx context.Context, speciesID *int64) (spreadsheet.Sheet, error)
}

type exportServiceImpl struct {
	speciesRepo     repositories.ISpeciesRepository
	observationRepo repositories.IObservationRepository
}

// NewExportService creates a new export service instance
func NewExportService(speciesRepo repositories.ISpeciesRepository, observationRepo repositories.IObservationRepository) ExportService {
	return &exportServiceImpl{
		speciesRepo:     speciesRepo,
		observationRepo: observationRepo,
	}
}

// allPages walks a list in MaxLimit pages until a short page comes back
func allPages[T any](ctx context.Context, list func(context.Context, helpers.Window) ([]T, error)) ([]T, error) {
	var all []T
	for skip := 0; ; skip += helpers.MaxLimit {
		page, err := list(ctx, helpers.NormalizeWindow(skip, helpers.MaxLimit))
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < helpers.MaxLimit {
			return all, nil
		}
	}
}

// SpeciesSheet lists every species with the same columns the import accepts
func (s *exportServiceImpl) SpeciesSheet(ctx context.Context) (spreadsheet.Sheet, error) {
	species, err := allPages(ctx, func(ctx context.Context, w helpers.Window) ([]*models.Species, error) {
		return s.speciesRepo.List(ctx, dto.SpeciesFilter{}, w)
	})
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("failed to load species for export: %w", err)
	}

	sheet := spreadsheet.Sheet{
		Name: "Species",
		Header: []string{
			"id", "common_name", "scientific_name", "category", "conservation_status",
			"description", "habitat_description", "threats", "conservation_actions",
			"population_estimate", "created_at", "updated_at",
		},
		Rows: make([][]interface{}, 0, len(species)),
	}
	for _, sp := range species {
		sheet.Rows = append(sheet.Rows, []interface{}{
			sp.ID, sp.CommonName, sp.ScientificName, string(sp.Category), string(sp.ConservationStatus),
			sp.Description, sp.HabitatDescription, sp.Threats, sp.ConservationActions,
			sp.PopulationEstimate, sp.CreatedAt, sp.UpdatedAt,
		})
	}
	return sheet, nil
}

// ObservationsSheet lists every observation, optionally restricted to one species
func (s *exportServiceImpl) ObservationsSheet(ctx context.Context, speciesID *int64) (spreadsheet.Sheet, error) {
	filter := dto.ObservationFilter{SpeciesID: speciesID}
	observations, err := allPages(ctx, func(ctx context.Context, w helpers.Window) ([]*models.Observation, error) {
		return s.observationRepo.List(ctx, filter, w)
	})
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("failed to load observations for export: %w", err)
	}

	sheet := spreadsheet.Sheet{
		Name: "Observations",
		Header: []string{
			"id", "species_id", "observer_id", "latitude", "longitude", "accuracy",
			"observation_date", "count", "activity_type", "weather_conditions",
			"temperature", "humidity", "behavior_notes", "health_status", "age_group",
			"sex", "notes", "verified", "created_at",
		},
		Rows: make([][]interface{}, 0, len(observations)),
	}
	for _, o := range observations {
		var activity interface{}
		if o.ActivityType != nil {
			activity = string(*o.ActivityType)
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			o.ID, o.SpeciesID, o.ObserverID, o.Latitude, o.Longitude, o.Accuracy,
			o.ObservationDate, o.Count, activity, o.WeatherConditions,
			o.Temperature, o.Humidity, o.BehaviorNotes, o.HealthStatus, o.AgeGroup,
			o.Sex, o.Notes, o.Verified, o.CreatedAt,
		})
	}
	return sheet, nil
}
