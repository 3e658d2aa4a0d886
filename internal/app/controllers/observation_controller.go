package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// ObservationController handles field observation operations
type ObservationController struct {
	observationService services.ObservationService
}

// NewObservationController creates a new observation controller
func NewObservationController(observationService services.ObservationService) *ObservationController {
	return &ObservationController{observationService: observationService}
}

// CreateObservation records a sighting. The observer is the authenticated user, never the body.
// @Summary Create observation
// @Tags observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateObservationRequest true "Observation to record"
// @Success 201 {object} dto.APIResponse{data=models.Observation}
// @Failure 400 {object} dto.ErrorResponse "Validation failed or unknown species"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /observations [post]
func (c *ObservationController) CreateObservation(ctx *gin.Context) {
	observerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, auth.ErrInvalidToken)
		return
	}

	var req dto.CreateObservationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	observation, err := c.observationService.CreateObservation(ctx, observerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(observation))
}

// ListObservations lists observations, optionally filtered
// @Summary List observations
// @Tags observations
// @Produce json
// @Param species_id query int false "Species ID"
// @Param observer_id query int false "Observer user ID"
// @Param verified query bool false "Verification flag"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} dto.APIResponse{data=[]models.Observation}
// @Router /observations [get]
func (c *ObservationController) ListObservations(ctx *gin.Context) {
	var filter dto.ObservationFilter
	var err error

	if filter.SpeciesID, err = helpers.ParseInt64Query(ctx, "species_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if filter.ObserverID, err = helpers.ParseInt64Query(ctx, "observer_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if filter.Verified, err = helpers.ParseBoolQuery(ctx, "verified"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	observations, err := c.observationService.ListObservations(ctx, filter, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(observations))
}

// GetObservation retrieves an observation by ID
// @Summary Get observation by ID
// @Tags observations
// @Produce json
// @Param id path int true "Observation ID"
// @Success 200 {object} dto.APIResponse{data=models.Observation}
// @Failure 404 {object} dto.ErrorResponse "Observation not found"
// @Router /observations/{id} [get]
func (c *ObservationController) GetObservation(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	observation, err := c.observationService.GetObservationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(observation))
}

// UpdateObservation overwrites the fields present in the body
// @Summary Update observation
// @Tags observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Observation ID"
// @Param request body dto.UpdateObservationRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Observation}
// @Router /observations/{id} [put]
func (c *ObservationController) UpdateObservation(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateObservationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	observation, err := c.observationService.UpdateObservation(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(observation))
}

// DeleteObservation removes an observation
// @Summary Delete observation
// @Tags observations
// @Security BearerAuth
// @Param id path int true "Observation ID"
// @Router /observations/{id} [delete]
func (c *ObservationController) DeleteObservation(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.observationService.DeleteObservation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Observation deleted successfully"}))
}
