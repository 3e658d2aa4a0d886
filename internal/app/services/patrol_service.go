package services

import (
	"context"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

// PatrolService defines the interface for patrol route and patrol log operations
type PatrolService interface {
	CreateRoute(ctx context.Context, req *dto.CreatePatrolRouteRequest) (*models.PatrolRoute, error)
	GetRouteByID(ctx context.Context, id int64) (*models.PatrolRoute, error)
	ListRoutes(ctx context.Context, window helpers.Window) ([]*models.PatrolRoute, error)
	UpdateRoute(ctx context.Context, id int64, req *dto.UpdatePatrolRouteRequest) (*models.PatrolRoute, error)
	DeleteRoute(ctx context.Context, id int64) error

	CreateLog(ctx context.Context, rangerID int64, req *dto.CreatePatrolLogRequest) (*models.PatrolLog, error)
	GetLogByID(ctx context.Context, id int64) (*models.PatrolLog, error)
	ListLogs(ctx context.Context, filter dto.PatrolLogFilter, window helpers.Window) ([]*models.PatrolLog, error)
	UpdateLog(ctx context.Context, id int64, req *dto.UpdatePatrolLogRequest) (*models.PatrolLog, error)
	DeleteLog(ctx context.Context, id int64) error
}

// patrolServiceImpl implements the PatrolService interface
type patrolServiceImpl struct {
	patrolRepo repositories.IPatrolRepository
}

// NewPatrolService creates a new patrol service instance
func NewPatrolService(patrolRepo repositories.IPatrolRepository) PatrolService {
	return &patrolServiceImpl{
		patrolRepo: patrolRepo,
	}
}

// CreateRoute stores a new patrol route
func (s *patrolServiceImpl) CreateRoute(ctx context.Context, req *dto.CreatePatrolRouteRequest) (*models.PatrolRoute, error) {
	route, err := s.patrolRepo.CreateRoute(ctx, req.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create patrol route: %w", err)
	}
	return route, nil
}

// GetRouteByID retrieves a patrol route by ID
func (s *patrolServiceImpl) GetRouteByID(ctx context.Context, id int64) (*models.PatrolRoute, error) {
	return s.patrolRepo.GetRouteByID(ctx, id)
}

// ListRoutes retrieves a page of patrol routes
func (s *patrolServiceImpl) ListRoutes(ctx context.Context, window helpers.Window) ([]*models.PatrolRoute, error) {
	return s.patrolRepo.ListRoutes(ctx, window)
}

// UpdateRoute merges the request into the stored route
func (s *patrolServiceImpl) UpdateRoute(ctx context.Context, id int64, req *dto.UpdatePatrolRouteRequest) (*models.PatrolRoute, error) {
	route, err := s.patrolRepo.GetRouteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(route)

	updated, err := s.patrolRepo.UpdateRoute(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("failed to update patrol route: %w", err)
	}
	return updated, nil
}

// DeleteRoute removes a patrol route
func (s *patrolServiceImpl) DeleteRoute(ctx context.Context, id int64) error {
	return s.patrolRepo.DeleteRoute(ctx, id)
}

// validateTimes rejects a patrol that ends before it starts
func validateTimes(l *models.PatrolLog) error {
	if l.StartTime != nil && l.EndTime != nil && l.EndTime.Before(*l.StartTime) {
		return apperrors.NewValidationError("end_time", "must not be before start_time")
	}
	return nil
}

// CreateLog files a patrol report for rangerID
func (s *patrolServiceImpl) CreateLog(ctx context.Context, rangerID int64, req *dto.CreatePatrolLogRequest) (*models.PatrolLog, error) {
	log := req.ToModel(rangerID)
	if err := validateTimes(log); err != nil {
		return nil, err
	}

	created, err := s.patrolRepo.CreateLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create patrol log: %w", err)
	}

	logger.Info().Int64("patrolLogID", created.ID).Int64("rangerID", rangerID).Msg("Patrol log filed")
	return created, nil
}

// GetLogByID retrieves a patrol log by ID
func (s *patrolServiceImpl) GetLogByID(ctx context.Context, id int64) (*models.PatrolLog, error) {
	return s.patrolRepo.GetLogByID(ctx, id)
}

// ListLogs retrieves a page of patrol logs
func (s *patrolServiceImpl) ListLogs(ctx context.Context, filter dto.PatrolLogFilter, window helpers.Window) ([]*models.PatrolLog, error) {
	return s.patrolRepo.ListLogs(ctx, filter, window)
}

// UpdateLog merges the request into the stored log
func (s *patrolServiceImpl) UpdateLog(ctx context.Context, id int64, req *dto.UpdatePatrolLogRequest) (*models.PatrolLog, error) {
	log, err := s.patrolRepo.GetLogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(log)
	if err := validateTimes(log); err != nil {
		return nil, err
	}

	updated, err := s.patrolRepo.UpdateLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to update patrol log: %w", err)
	}
	return updated, nil
}

// DeleteLog removes a patrol log
func (s *patrolServiceImpl) DeleteLog(ctx context.Context, id int64) error {
	return s.patrolRepo.DeleteLog(ctx, id)
}
