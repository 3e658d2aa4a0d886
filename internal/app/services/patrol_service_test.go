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

func patrolDate() *time.Time {
	d := time.Date(2025, 4, 23, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestCreateLogAttributesRanger(t *testing.T) {
	repo := new(mockPatrolRepo)
	repo.On("CreateLog", mock.Anything, mock.MatchedBy(func(l *models.PatrolLog) bool {
		return l.RangerID == 7
	})).Return(&models.PatrolLog{ID: 3, RangerID: 7}, nil)

	created, err := NewPatrolService(repo).CreateLog(context.Background(), 7, &dto.CreatePatrolLogRequest{
		PatrolDate: patrolDate(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	repo.AssertExpectations(t)
}

func TestCreateLogUnknownRoute(t *testing.T) {
	repo := new(mockPatrolRepo)
	repo.On("CreateLog", mock.Anything, mock.Anything).Return(nil, apperrors.NewInvalidReferenceError("route_id"))

	routeID := int64(404)
	_, err := NewPatrolService(repo).CreateLog(context.Background(), 7, &dto.CreatePatrolLogRequest{
		RouteID:    &routeID,
		PatrolDate: patrolDate(),
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidReference)
	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "route_id", customErr.Details["field"])
}

func TestCreateLogRejectsEndBeforeStart(t *testing.T) {
	repo := new(mockPatrolRepo)
	start := time.Date(2025, 4, 23, 18, 0, 0, 0, time.UTC)
	end := start.Add(-2 * time.Hour)

	_, err := NewPatrolService(repo).CreateLog(context.Background(), 7, &dto.CreatePatrolLogRequest{
		PatrolDate: patrolDate(),
		StartTime:  &start,
		EndTime:    &end,
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_time", verr.Field)
	repo.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestPatrolLookupsReportNotFound(t *testing.T) {
	repo := new(mockPatrolRepo)
	repo.On("GetLogByID", mock.Anything, int64(0)).Return(nil, apperrors.ErrPatrolLogNotFound)
	repo.On("GetRouteByID", mock.Anything, int64(-1)).Return(nil, apperrors.ErrPatrolRouteNotFound)
	service := NewPatrolService(repo)

	_, err := service.GetLogByID(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = service.UpdateRoute(context.Background(), -1, &dto.UpdatePatrolRouteRequest{})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	repo.AssertNotCalled(t, "UpdateRoute", mock.Anything, mock.Anything)
}
