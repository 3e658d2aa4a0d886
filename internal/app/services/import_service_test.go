package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/spreadsheet"
)

func speciesRow(index int, common, scientific string, extra map[string]string) spreadsheet.Row {
	values := map[string]string{
		"common_name":     common,
		"scientific_name": scientific,
	}
	for k, v := range extra {
		values[k] = v
	}
	return spreadsheet.Row{Index: index, Values: values}
}

func TestImportSpeciesRowsSkipsBadRowAndKeepsTheRest(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("ExistsByScientificName", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(batch []*models.Species) bool {
		return len(batch) == 3
	})).Return(nil).Once()

	rows := []spreadsheet.Row{
		speciesRow(1, "Lion", "Panthera leo", nil),
		speciesRow(2, "Elephant", "Loxodonta africana", map[string]string{"conservation_status": "XX"}),
		speciesRow(3, "Cheetah", "Acinonyx jubatus", map[string]string{"category": "Animal"}),
		speciesRow(4, "Baobab", "Adansonia digitata", map[string]string{"category": "plant", "population_estimate": "1500.0"}),
	}

	result, err := NewImportService(repo).ImportSpeciesRows(context.Background(), rows)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.ImportedCount)
	assert.Equal(t, 0, result.SkippedCount)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 2: conservation_status")
	repo.AssertExpectations(t)
}

func TestImportSpeciesRowsAppliesDefaults(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("ExistsByScientificName", mock.Anything, "Panthera pardus").Return(false, nil)

	var committed []*models.Species
	repo.On("CreateMany", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		committed = args.Get(1).([]*models.Species)
	}).Return(nil)

	_, err := NewImportService(repo).ImportSpeciesRows(context.Background(), []spreadsheet.Row{
		speciesRow(1, "Leopard", "Panthera pardus", nil),
	})
	require.NoError(t, err)

	require.Len(t, committed, 1)
	assert.Equal(t, models.CategoryAnimal, committed[0].Category)
	assert.Equal(t, models.StatusLeastConcern, committed[0].ConservationStatus)
	assert.Nil(t, committed[0].Description)
}

func TestImportSpeciesRowsSkipsDuplicates(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("ExistsByScientificName", mock.Anything, "Panthera leo").Return(true, nil)
	repo.On("ExistsByScientificName", mock.Anything, "Giraffa camelopardalis").Return(false, nil).Once()
	repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(batch []*models.Species) bool {
		return len(batch) == 1 && batch[0].ScientificName == "Giraffa camelopardalis"
	})).Return(nil)

	rows := []spreadsheet.Row{
		speciesRow(1, "Lion", "Panthera leo", nil),
		speciesRow(2, "Giraffe", "Giraffa camelopardalis", nil),
		speciesRow(3, "Giraffe again", "Giraffa camelopardalis", nil),
		{Index: 4, Values: map[string]string{"common_name": " ", "scientific_name": ""}},
	}

	result, err := NewImportService(repo).ImportSpeciesRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ImportedCount)
	assert.Equal(t, 2, result.SkippedCount)
	assert.Empty(t, result.Errors)
	repo.AssertExpectations(t)
}

func TestImportSpeciesRowsReportsMissingRequiredColumn(t *testing.T) {
	repo := new(mockSpeciesRepo)
	repo.On("CreateMany", mock.Anything, mock.Anything).Return(nil)

	rows := []spreadsheet.Row{
		{Index: 5, Values: map[string]string{"common_name": "Nameless"}},
		speciesRow(6, "Hippo", "Hippopotamus amphibius", map[string]string{"population_estimate": "many"}),
	}

	result, err := NewImportService(repo).ImportSpeciesRows(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ImportedCount)
	assert.Equal(t, []string{
		"Row 5: scientific_name: is required",
		"Row 6: population_estimate: must be a whole number",
	}, result.Errors)
	repo.AssertNotCalled(t, "ExistsByScientificName", mock.Anything, mock.Anything)
}

func TestImportSpeciesRowsFailsWholeBatchOnCommitError(t *testing.T) {
	tests := []struct {
		name      string
		commitErr error
	}{
		{"connection lost", errors.New("connection reset")},
		// a concurrent insert of the same scientific_name after the existence check
		{"late duplicate", fmt.Errorf("species %q: %w", "Panthera leo",
			apperrors.NewAlreadyExistsError("species with this scientific_name already exists"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockSpeciesRepo)
			repo.On("ExistsByScientificName", mock.Anything, mock.Anything).Return(false, nil)
			repo.On("CreateMany", mock.Anything, mock.Anything).Return(tt.commitErr)

			result, err := NewImportService(repo).ImportSpeciesRows(context.Background(), []spreadsheet.Row{
				speciesRow(1, "Lion", "Panthera leo", nil),
			})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.False(t, errors.Is(err, apperrors.ErrResourceAlreadyExists))

			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/species/import-excel", nil)
			middleware.HandleAPIError(c, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}

func TestImportSpeciesFileRejectsUnreadableWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "species.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o600))

	_, err := NewImportService(new(mockSpeciesRepo)).ImportSpeciesFile(context.Background(), path)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestWholeNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1500", 1500, false},
		{"1500.0", 1500, false},
		{"12.5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := wholeNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
