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

// PatrolController handles patrol routes and the logs rangers file against them
type PatrolController struct {
	patrolService services.PatrolService
}

// NewPatrolController creates a new patrol controller
func NewPatrolController(patrolService services.PatrolService) *PatrolController {
	return &PatrolController{patrolService: patrolService}
}

// --- Routes ---

// CreateRoute creates a patrol route
func (c *PatrolController) CreateRoute(ctx *gin.Context) {
	var req dto.CreatePatrolRouteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	route, err := c.patrolService.CreateRoute(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(route))
}

// ListRoutes lists patrol routes
func (c *PatrolController) ListRoutes(ctx *gin.Context) {
	routes, err := c.patrolService.ListRoutes(ctx, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(routes))
}

// GetRoute retrieves a patrol route by ID
func (c *PatrolController) GetRoute(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	route, err := c.patrolService.GetRouteByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(route))
}

// UpdateRoute overwrites the fields present in the body
func (c *PatrolController) UpdateRoute(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdatePatrolRouteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	route, err := c.patrolService.UpdateRoute(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(route))
}

// DeleteRoute removes a patrol route
func (c *PatrolController) DeleteRoute(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.patrolService.DeleteRoute(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Patrol route deleted successfully"}))
}

// --- Logs ---

// CreateLog files a patrol log for the authenticated ranger
func (c *PatrolController) CreateLog(ctx *gin.Context) {
	rangerID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, auth.ErrInvalidToken)
		return
	}

	var req dto.CreatePatrolLogRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	log, err := c.patrolService.CreateLog(ctx, rangerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(log))
}

// ListLogs lists patrol logs filtered by route_id and ranger_id
func (c *PatrolController) ListLogs(ctx *gin.Context) {
	var filter dto.PatrolLogFilter
	var err error

	if filter.RouteID, err = helpers.ParseInt64Query(ctx, "route_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if filter.RangerID, err = helpers.ParseInt64Query(ctx, "ranger_id"); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logs, err := c.patrolService.ListLogs(ctx, filter, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(logs))
}

// GetLog retrieves a patrol log by ID
func (c *PatrolController) GetLog(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	log, err := c.patrolService.GetLogByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(log))
}

// UpdateLog overwrites the fields present in the body
func (c *PatrolController) UpdateLog(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdatePatrolLogRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	log, err := c.patrolService.UpdateLog(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(log))
}

// DeleteLog removes a patrol log
func (c *PatrolController) DeleteLog(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.patrolService.DeleteLog(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Patrol log deleted successfully"}))
}
