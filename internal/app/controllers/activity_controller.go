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

// ActivityController handles conservation activity operations
type ActivityController struct {
	activityService services.ActivityService
}

// NewActivityController creates a new activity controller
func NewActivityController(activityService services.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// CreateActivity creates a conservation activity
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	activity, err := c.activityService.CreateActivity(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(activity))
}

// ListActivities lists activities filtered by species_id, assigned_user_id and status
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	var filter dto.ActivityFilter
	var err error

	if filter.SpeciesID, err = helpers.ParseInt64Query(ctx, "species_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if filter.AssignedUserID, err = helpers.ParseInt64Query(ctx, "assigned_user_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if status := helpers.ParseStringQuery(ctx, "status"); status != nil {
		s := models.ActivityStatus(*status)
		filter.Status = &s
	}

	activities, err := c.activityService.ListActivities(ctx, filter, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activities))
}

// GetActivity retrieves an activity by ID
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	activity, err := c.activityService.GetActivityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activity))
}

// UpdateActivity overwrites the fields present in the body
func (c *ActivityController) UpdateActivity(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateActivityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	activity, err := c.activityService.UpdateActivity(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activity))
}

// DeleteActivity removes an activity
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.activityService.DeleteActivity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Activity deleted successfully"}))
}
