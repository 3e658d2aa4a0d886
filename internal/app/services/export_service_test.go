package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

func speciesPage(first int64, n int) []*models.Species {
	page := make([]*models.Species, n)
	for i := range page {
		page[i] = &models.Species{ID: first + int64(i), CommonName: "Lion"}
	}
	return page
}

func TestSpeciesSheetReadsCappedPages(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("List", mock.Anything, dto.SpeciesFilter{}, helpers.Window{Skip: 0, Limit: helpers.MaxLimit}).
		Return(speciesPage(1, helpers.MaxLimit), nil).Once()
	repo.On("List", mock.Anything, dto.SpeciesFilter{}, helpers.Window{Skip: helpers.MaxLimit, Limit: helpers.MaxLimit}).
		Return(speciesPage(helpers.MaxLimit+1, 2), nil).Once()

	sheet, err := NewExportService(repo, new(mockObservationRepo)).SpeciesSheet(context.Background())
	require.NoError(t, err)

	assert.Len(t, sheet.Rows, helpers.MaxLimit+2)
	assert.Equal(t, int64(helpers.MaxLimit+2), sheet.Rows[len(sheet.Rows)-1][0])
	repo.AssertExpectations(t)
}

func TestObservationsSheetKeepsSpeciesFilter(t *testing.T) {
	observations := new(mockObservationRepo)
	speciesID := int64(3)
	observations.On("List", mock.Anything, dto.ObservationFilter{SpeciesID: &speciesID},
		helpers.Window{Skip: 0, Limit: helpers.MaxLimit}).
		Return([]*models.Observation{{ID: 11, SpeciesID: 3}}, nil).Once()

	sheet, err := NewExportService(new(mockSpeciesRepo), observations).ObservationsSheet(context.Background(), &speciesID)
	require.NoError(t, err)

	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, int64(11), sheet.Rows[0][0])
	observations.AssertExpectations(t)
}

func TestSpeciesSheetStorageFailure(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := NewExportService(repo, new(mockObservationRepo)).SpeciesSheet(context.Background())
	assert.Error(t, err)
}
