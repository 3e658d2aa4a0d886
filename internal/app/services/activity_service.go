package services

import (
	"context"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// ActivityService defines the interface for conservation activity operations
type ActivityService interface {
	CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*models.Activity, error)
	GetActivityByID(ctx context.Context, id int64) (*models.Activity, error)
	ListActivities(ctx context.Context, filter dto.ActivityFilter, window helpers.Window) ([]*models.Activity, error)
	UpdateActivity(ctx context.Context, id int64, req *dto.UpdateActivityRequest) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activityRepo repositories.IActivityRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(activityRepo repositories.IActivityRepository) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
	}
}

// validateSchedule rejects date ranges that end before they start
func (s *activityServiceImpl) validateSchedule(a *models.Activity) error {
	if a.PlannedStartDate != nil && a.PlannedEndDate != nil && a.PlannedEndDate.Before(*a.PlannedStartDate) {
		return apperrors.NewValidationError("planned_end_date", "must not be before planned_start_date")
	}
	if a.ActualStartDate != nil && a.ActualEndDate != nil && a.ActualEndDate.Before(*a.ActualStartDate) {
		return apperrors.NewValidationError("actual_end_date", "must not be before actual_start_date")
	}
	return nil
}

// CreateActivity stores a new activity; missing status and priority default to planned and medium
func (s *activityServiceImpl) CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*models.Activity, error) {
	activity := req.ToModel()
	if err := s.validateSchedule(activity); err != nil {
		return nil, err
	}

	created, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return created, nil
}

// GetActivityByID retrieves an activity by ID
func (s *activityServiceImpl) GetActivityByID(ctx context.Context, id int64) (*models.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

// ListActivities retrieves a page of activities
func (s *activityServiceImpl) ListActivities(ctx context.Context, filter dto.ActivityFilter, window helpers.Window) ([]*models.Activity, error) {
	return s.activityRepo.List(ctx, filter, window)
}

// UpdateActivity merges the request into the stored activity
func (s *activityServiceImpl) UpdateActivity(ctx context.Context, id int64, req *dto.UpdateActivityRequest) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(activity)
	if err := s.validateSchedule(activity); err != nil {
		return nil, err
	}

	updated, err := s.activityRepo.Update(ctx, activity)
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return updated, nil
}

// DeleteActivity removes an activity
func (s *activityServiceImpl) DeleteActivity(ctx context.Context, id int64) error {
	return s.activityRepo.Delete(ctx, id)
}
