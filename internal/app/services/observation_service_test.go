package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
)

func float(v float64) *float64 { return &v }

func TestCreateObservationStampsObserverAndDefaults(t *testing.T) {
	speciesRepo := new(mockSpeciesRepo)
	observationRepo := new(mockObservationRepo)

	date := time.Date(2025, 4, 23, 8, 30, 0, 0, time.FixedZone("WAT", 3600))
	speciesRepo.On("GetByID", mock.Anything, int64(3)).Return(&models.Species{ID: 3}, nil)
	observationRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *models.Observation) bool {
		return o.ObserverID == 42 && o.Count == 1 && o.SpeciesID == 3 && o.ObservationDate.Location() == time.UTC
	})).Return(&models.Observation{ID: 9, SpeciesID: 3, ObserverID: 42}, nil)

	svc := NewObservationService(observationRepo, speciesRepo)
	got, err := svc.CreateObservation(context.Background(), 42, &dto.CreateObservationRequest{
		SpeciesID:       3,
		Latitude:        float(11.2),
		Longitude:       float(2.1),
		ObservationDate: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	observationRepo.AssertExpectations(t)
}

func TestCreateObservationRejectsUnknownSpecies(t *testing.T) {
	speciesRepo := new(mockSpeciesRepo)
	observationRepo := new(mockObservationRepo)
	speciesRepo.On("GetByID", mock.Anything, int64(77)).Return(nil, apperrors.ErrSpeciesNotFound)

	date := time.Now()
	_, err := NewObservationService(observationRepo, speciesRepo).CreateObservation(context.Background(), 1, &dto.CreateObservationRequest{
		SpeciesID:       77,
		Latitude:        float(0),
		Longitude:       float(0),
		ObservationDate: &date,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
	observationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateObservationMergesPresentFields(t *testing.T) {
	speciesRepo := new(mockSpeciesRepo)
	observationRepo := new(mockObservationRepo)
	notes := "old"
	stored := &models.Observation{ID: 5, SpeciesID: 3, Latitude: 1, Longitude: 2, Count: 4, Notes: &notes}
	observationRepo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
	observationRepo.On("Update", mock.Anything, stored).Return(stored, nil)

	verified := true
	got, err := NewObservationService(observationRepo, speciesRepo).UpdateObservation(context.Background(), 5, &dto.UpdateObservationRequest{
		Latitude: float(-3.5),
		Verified: &verified,
	})
	require.NoError(t, err)

	assert.Equal(t, -3.5, got.Latitude)
	assert.Equal(t, 2.0, got.Longitude)
	assert.Equal(t, 4, got.Count)
	assert.True(t, got.Verified)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "old", *got.Notes)
	speciesRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetObservationNotFound(t *testing.T) {
	observationRepo := new(mockObservationRepo)
	observationRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, apperrors.ErrObservationNotFound)

	_, err := NewObservationService(observationRepo, new(mockSpeciesRepo)).GetObservationByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrValidationFailed)
}
