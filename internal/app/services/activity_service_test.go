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

func TestCreateActivityDefaults(t *testing.T) {
	repo := new(mockActivityRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Activity) bool {
		return a.Status == models.ActivityPlanned && a.Priority == models.PriorityMedium
	})).Return(&models.Activity{ID: 1}, nil)

	_, err := NewActivityService(repo).CreateActivity(context.Background(), &dto.CreateActivityRequest{
		SpeciesID:    1,
		ActivityType: models.ActivityPopulationMonitoring,
		Title:        "Aerial census",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateActivityRejectsInvertedSchedule(t *testing.T) {
	repo := new(mockActivityRepo)
	start := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := NewActivityService(repo).CreateActivity(context.Background(), &dto.CreateActivityRequest{
		SpeciesID:        1,
		ActivityType:     models.ActivityAntiPoaching,
		Title:            "Night patrol",
		PlannedStartDate: &start,
		PlannedEndDate:   &end,
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "planned_end_date", verr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateActivityUnknownAssignee(t *testing.T) {
	repo := new(mockActivityRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.NewInvalidReferenceError("assigned_user_id"))

	assignee := int64(999)
	_, err := NewActivityService(repo).CreateActivity(context.Background(), &dto.CreateActivityRequest{
		SpeciesID:      1,
		AssignedUserID: &assignee,
		ActivityType:   models.ActivityAntiPoaching,
		Title:          "Night patrol",
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidReference)
	var customErr *apperrors.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "assigned_user_id", customErr.Details["field"])
}

func TestUpdateActivityNotFound(t *testing.T) {
	repo := new(mockActivityRepo)
	repo.On("GetByID", mock.Anything, int64(0)).Return(nil, apperrors.ErrActivityNotFound)

	_, err := NewActivityService(repo).UpdateActivity(context.Background(), 0, &dto.UpdateActivityRequest{})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
