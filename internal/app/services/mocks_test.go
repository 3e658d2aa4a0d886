package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// result unpacks the first return value of a mock call, tolerating an untyped nil
func result[T any](args mock.Arguments, i int) T {
	var zero T
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	return zero
}

type mockSpeciesRepo struct {
	mock.Mock
}

func (m *mockSpeciesRepo) Create(ctx context.Context, species *models.Species) (*models.Species, error) {
	args := m.Called(ctx, species)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesRepo) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	args := m.Called(ctx, id)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesRepo) List(ctx context.Context, filter dto.SpeciesFilter, window helpers.Window) ([]*models.Species, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesRepo) Update(ctx context.Context, species *models.Species) (*models.Species, error) {
	args := m.Called(ctx, species)
	return result[*models.Species](args, 0), args.Error(1)
}

func (m *mockSpeciesRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSpeciesRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return result[int64](args, 0), args.Error(1)
}

func (m *mockSpeciesRepo) ExistsByScientificName(ctx context.Context, scientificName string) (bool, error) {
	args := m.Called(ctx, scientificName)
	return args.Bool(0), args.Error(1)
}

func (m *mockSpeciesRepo) CreateMany(ctx context.Context, species []*models.Species) error {
	return m.Called(ctx, species).Error(0)
}

type mockObservationRepo struct {
	mock.Mock
}

func (m *mockObservationRepo) Create(ctx context.Context, observation *models.Observation) (*models.Observation, error) {
	args := m.Called(ctx, observation)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationRepo) GetByID(ctx context.Context, id int64) (*models.Observation, error) {
	args := m.Called(ctx, id)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationRepo) List(ctx context.Context, filter dto.ObservationFilter, window helpers.Window) ([]*models.Observation, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationRepo) Update(ctx context.Context, observation *models.Observation) (*models.Observation, error) {
	args := m.Called(ctx, observation)
	return result[*models.Observation](args, 0), args.Error(1)
}

func (m *mockObservationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockObservationRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return result[int64](args, 0), args.Error(1)
}

func (m *mockObservationRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return result[int64](args, 0), args.Error(1)
}

func (m *mockObservationRepo) CountBySpecies(ctx context.Context) ([]models.SpeciesObservationCount, error) {
	args := m.Called(ctx)
	return result[[]models.SpeciesObservationCount](args, 0), args.Error(1)
}

func (m *mockObservationRepo) SummaryForSpecies(ctx context.Context, speciesID int64) (*models.SpeciesObservationSummary, error) {
	args := m.Called(ctx, speciesID)
	return result[*models.SpeciesObservationSummary](args, 0), args.Error(1)
}

func (m *mockObservationRepo) Locations(ctx context.Context, speciesID *int64) ([]*models.ObservationLocation, error) {
	args := m.Called(ctx, speciesID)
	return result[[]*models.ObservationLocation](args, 0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	return result[*models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	return result[*models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, filter dto.UserFilter, window helpers.Window) ([]*models.User, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	return result[*models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	return result[*models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	args := m.Called(ctx, activity)
	return result[*models.Activity](args, 0), args.Error(1)
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	args := m.Called(ctx, id)
	return result[*models.Activity](args, 0), args.Error(1)
}

func (m *mockActivityRepo) List(ctx context.Context, filter dto.ActivityFilter, window helpers.Window) ([]*models.Activity, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.Activity](args, 0), args.Error(1)
}

func (m *mockActivityRepo) Update(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	args := m.Called(ctx, activity)
	return result[*models.Activity](args, 0), args.Error(1)
}

func (m *mockActivityRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPatrolRepo struct {
	mock.Mock
}

func (m *mockPatrolRepo) CreateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error) {
	args := m.Called(ctx, route)
	return result[*models.PatrolRoute](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) GetRouteByID(ctx context.Context, id int64) (*models.PatrolRoute, error) {
	args := m.Called(ctx, id)
	return result[*models.PatrolRoute](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) ListRoutes(ctx context.Context, window helpers.Window) ([]*models.PatrolRoute, error) {
	args := m.Called(ctx, window)
	return result[[]*models.PatrolRoute](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) UpdateRoute(ctx context.Context, route *models.PatrolRoute) (*models.PatrolRoute, error) {
	args := m.Called(ctx, route)
	return result[*models.PatrolRoute](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) DeleteRoute(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPatrolRepo) CreateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error) {
	args := m.Called(ctx, log)
	return result[*models.PatrolLog](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) GetLogByID(ctx context.Context, id int64) (*models.PatrolLog, error) {
	args := m.Called(ctx, id)
	return result[*models.PatrolLog](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) ListLogs(ctx context.Context, filter dto.PatrolLogFilter, window helpers.Window) ([]*models.PatrolLog, error) {
	args := m.Called(ctx, filter, window)
	return result[[]*models.PatrolLog](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) UpdateLog(ctx context.Context, log *models.PatrolLog) (*models.PatrolLog, error) {
	args := m.Called(ctx, log)
	return result[*models.PatrolLog](args, 0), args.Error(1)
}

func (m *mockPatrolRepo) DeleteLog(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
