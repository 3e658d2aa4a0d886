package services

import (
	"context"
	"fmt"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// WaterPointService defines the interface for water point operations
type WaterPointService interface {
	CreateWaterPoint(ctx context.Context, req *dto.CreateWaterPointRequest) (*models.WaterPoint, error)
	GetWaterPointByID(ctx context.Context, id int64) (*models.WaterPoint, error)
	ListWaterPoints(ctx context.Context, filter dto.WaterPointFilter, window helpers.Window) ([]*models.WaterPoint, error)
	UpdateWaterPoint(ctx context.Context, id int64, req *dto.UpdateWaterPointRequest) (*models.WaterPoint, error)
	DeleteWaterPoint(ctx context.Context, id int64) error
}

type waterPointServiceImpl struct {
	waterPointRepo repositories.IWaterPointRepository
}

// NewWaterPointService creates a new water point service instance
func NewWaterPointService(waterPointRepo repositories.IWaterPointRepository) WaterPointService {
	return &waterPointServiceImpl{
		waterPointRepo: waterPointRepo,
	}
}

func (s *waterPointServiceImpl) CreateWaterPoint(ctx context.Context, req *dto.CreateWaterPointRequest) (*models.WaterPoint, error) {
	created, err := s.waterPointRepo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, fmt.Errorf("failed to create water point: %w", err)
	}
	return created, nil
}

func (s *waterPointServiceImpl) GetWaterPointByID(ctx context.Context, id int64) (*models.WaterPoint, error) {
	return s.waterPointRepo.GetByID(ctx, id)
}

func (s *waterPointServiceImpl) ListWaterPoints(ctx context.Context, filter dto.WaterPointFilter, window helpers.Window) ([]*models.WaterPoint, error) {
	return s.waterPointRepo.List(ctx, filter, window)
}

func (s *waterPointServiceImpl) UpdateWaterPoint(ctx context.Context, id int64, req *dto.UpdateWaterPointRequest) (*models.WaterPoint, error) {
	waterPoint, err := s.waterPointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(waterPoint)

	updated, err := s.waterPointRepo.Update(ctx, waterPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to update water point: %w", err)
	}
	return updated, nil
}

func (s *waterPointServiceImpl) DeleteWaterPoint(ctx context.Context, id int64) error {
	return s.waterPointRepo.Delete(ctx, id)
}
