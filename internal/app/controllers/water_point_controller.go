package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// WaterPointController handles water point operations
type WaterPointController struct {
	waterPointService services.WaterPointService
}

// NewWaterPointController creates a new water point controller
func NewWaterPointController(waterPointService services.WaterPointService) *WaterPointController {
	return &WaterPointController{waterPointService: waterPointService}
}

func (c *WaterPointController) CreateWaterPoint(ctx *gin.Context) {
	var req dto.CreateWaterPointRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	waterPoint, err := c.waterPointService.CreateWaterPoint(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(waterPoint))
}

func (c *WaterPointController) ListWaterPoints(ctx *gin.Context) {
	var filter dto.WaterPointFilter
	if status := helpers.ParseStringQuery(ctx, "status"); status != nil {
		s := models.WaterPointStatus(*status)
		filter.Status = &s
	}

	waterPoints, err := c.waterPointService.ListWaterPoints(ctx, filter, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(waterPoints))
}

func (c *WaterPointController) GetWaterPoint(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	waterPoint, err := c.waterPointService.GetWaterPointByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(waterPoint))
}

func (c *WaterPointController) UpdateWaterPoint(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateWaterPointRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	waterPoint, err := c.waterPointService.UpdateWaterPoint(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(waterPoint))
}

func (c *WaterPointController) DeleteWaterPoint(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.waterPointService.DeleteWaterPoint(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Water point deleted successfully"}))
}
