package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/geojson"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
)

// StatsController serves dashboard figures and the observation map
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new stats controller
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Dashboard returns catalogue totals, recent activity and per-species observation counts
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse}
// @Router /stats/dashboard [get]
func (c *StatsController) Dashboard(ctx *gin.Context) {
	stats, err := c.statsService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// SpeciesStatistics summarises the observations of one species
// @Summary Species statistics
// @Tags stats
// @Produce json
// @Param id path int true "Species ID"
// @Success 200 {object} dto.APIResponse{data=dto.SpeciesStatisticsResponse}
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Router /stats/species/{id} [get]
func (c *StatsController) SpeciesStatistics(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stats, err := c.statsService.SpeciesStatistics(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// ObservationsGeoJSON renders located observations as a bare FeatureCollection, without the
// response envelope, so map clients can load it directly.
// @Summary Observations as GeoJSON
// @Tags observations
// @Produce json
// @Param species_id query int false "Species ID"
// @Success 200 {object} geojson.FeatureCollection
// @Router /observations/geojson [get]
func (c *StatsController) ObservationsGeoJSON(ctx *gin.Context) {
	speciesID, err := helpers.ParseInt64Query(ctx, "species_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	collection, err := c.statsService.ObservationsGeoJSON(ctx, speciesID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	body, err := collection.Marshal()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, geojson.ContentType, body)
}
