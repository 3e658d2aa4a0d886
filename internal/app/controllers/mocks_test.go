package controllers

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/geojson"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/spreadsheet"
)

func result[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	return zero
}

type mockSpeciesService struct {
	mock.Mock
}

func (m *mockSpeciesService) CreateSpecies(ctx context.Context, req *dto.CreateSpeciesRequest) (*models.Species, error) {
	args := m.Called(ctx, req)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesService) GetSpeciesByID(ctx context.Context, id int64) (*models.Species, error) {
	args := m.Called(ctx, id)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesService) ListSpecies(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesService) UpdateSpecies(ctx context.Context, id int64, req *dto.UpdateSpeciesRequest) (*models.Species, error) {
	args := m.Called(ctx, id, req)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesService) DeleteSpecies(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockImportService struct {
	mock.Mock
}

func (m *mockImportService) ImportSpeciesFile(ctx context.Context, path string) (*dto.ImportResult, error) {
	args := m.Called(ctx, path)
	return result[*dto.ImportResult](args, 0), args.Error(1)
}

func (m *mockImportService) ImportSpeciesRows(ctx context.Context, rows []spreadsheet.Row) (*dto.ImportResult, error) {
	args := m.Called(ctx, rows)
	return result[*dto.ImportResult](args, 0), args.Error(1)
}

type mockObservationService struct {
	mock.Mock
}

func (m *mockObservationService) CreateObservation(ctx context.Context, observerID int64, req *dto.CreateObservationRequest) (*models.Observation, error) {
	args := m.Called(ctx, observerID, req)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationService) GetObservationByID(ctx context.Context, id int64) (*models.Observation, error) {
	args := m.Called(ctx, id)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationService) ListObservations(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationService) UpdateObservation(ctx context.Context, id int64, req *dto.UpdateObservationRequest) (*models.Observation, error) {
	args := m.Called(ctx, id, req)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationService) DeleteObservation(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	args := m.Called(ctx)
	return result[*dto.DashboardStatsResponse](args, 0), args.Error(1)
}

func (m *mockStatsService) SpeciesStatistics(ctx context.Context, speciesID int64) (*dto.SpeciesStatisticsResponse, error) {
	args := m.Called(ctx, speciesID)
	return result[*dto.SpeciesStatisticsResponse](args, 0), args.Error(1)
}

func (m *mockStatsService) ObservationsGeoJSON(ctx context.Context, speciesID *int64) (geojson.FeatureCollection, error) {
	args := m.Called(ctx, speciesID)
	return result[geojson.FeatureCollection](args, 0), args.Error(1)
}

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) SpeciesSheet(ctx context.Context) (spreadsheet.Sheet, error) {
	args := m.Called(ctx)
	return result[spreadsheet.Sheet](args, 0), args.Error(1)
}

func (m *mockExportService) ObservationsSheet(ctx context.Context, speciesID *int64) (spreadsheet.Sheet, error) {
	args := m.Called(ctx, speciesID)
	return result[spreadsheet.Sheet](args, 0), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

func (m *mockFileStorage) DeleteFile(filePath string) error {
	return m.Called(filePath).Error(0)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
