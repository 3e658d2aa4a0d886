package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wildtrack/wildlife-tracker/internal/app/controllers"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
)

// Controllers groups every controller mounted by SetupRouter
type Controllers struct {
	Health      *controllers.HealthController
	Auth        *controllers.AuthController
	Species     *controllers.SpeciesController
	Observation *controllers.ObservationController
	Activity    *controllers.ActivityController
	WaterPoint  *controllers.WaterPointController
	Patrol      *controllers.PatrolController
	User        *controllers.UserController
	Stats       *controllers.StatsController
	Export      *controllers.ExportController
}

// SetupRouter configures all application routes.
// Reads are public. Writes that stamp or manage staff data need a bearer token; the species
// catalogue and its import stay public.
func SetupRouter(
	router *gin.Engine,
	c Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.RateLimiter,
) {
	requireAuth := authMiddleware.JWTAuth()

	// --- Operational routes ---
	router.GET("/", c.Health.Root)
	router.GET("/health", c.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), c.Auth.Login)
		auth.GET("/me", requireAuth, c.Auth.Me)
	}

	// --- Species catalogue ---
	species := router.Group("/species")
	{
		species.POST("", c.Species.CreateSpecies)
		species.GET("", c.Species.ListSpecies)
		species.POST("/import-excel", c.Species.ImportExcel)
		species.GET("/:id", c.Species.GetSpecies)
		species.PUT("/:id", c.Species.UpdateSpecies)
		species.DELETE("/:id", c.Species.DeleteSpecies)
	}

	// --- Observations ---
	observations := router.Group("/observations")
	{
		observations.GET("", c.Observation.ListObservations)
		observations.GET("/geojson", c.Stats.ObservationsGeoJSON)
		observations.GET("/:id", c.Observation.GetObservation)

		observations.POST("", requireAuth, c.Observation.CreateObservation)
		observations.PUT("/:id", requireAuth, c.Observation.UpdateObservation)
		observations.DELETE("/:id", requireAuth, c.Observation.DeleteObservation)
	}

	// --- Activities ---
	activities := router.Group("/activities")
	{
		activities.GET("", c.Activity.ListActivities)
		activities.GET("/:id", c.Activity.GetActivity)

		activities.POST("", requireAuth, c.Activity.CreateActivity)
		activities.PUT("/:id", requireAuth, c.Activity.UpdateActivity)
		activities.DELETE("/:id", requireAuth, c.Activity.DeleteActivity)
	}

	// --- Water points ---
	waterPoints := router.Group("/water-points")
	{
		waterPoints.GET("", c.WaterPoint.ListWaterPoints)
		waterPoints.GET("/:id", c.WaterPoint.GetWaterPoint)

		waterPoints.POST("", requireAuth, c.WaterPoint.CreateWaterPoint)
		waterPoints.PUT("/:id", requireAuth, c.WaterPoint.UpdateWaterPoint)
		waterPoints.DELETE("/:id", requireAuth, c.WaterPoint.DeleteWaterPoint)
	}

	// --- Patrols ---
	patrolRoutes := router.Group("/patrol-routes")
	{
		patrolRoutes.GET("", c.Patrol.ListRoutes)
		patrolRoutes.GET("/:id", c.Patrol.GetRoute)

		patrolRoutes.POST("", requireAuth, c.Patrol.CreateRoute)
		patrolRoutes.PUT("/:id", requireAuth, c.Patrol.UpdateRoute)
		patrolRoutes.DELETE("/:id", requireAuth, c.Patrol.DeleteRoute)
	}

	patrolLogs := router.Group("/patrol-logs")
	{
		patrolLogs.GET("", c.Patrol.ListLogs)
		patrolLogs.GET("/:id", c.Patrol.GetLog)

		patrolLogs.POST("", requireAuth, c.Patrol.CreateLog)
		patrolLogs.PUT("/:id", requireAuth, c.Patrol.UpdateLog)
		patrolLogs.DELETE("/:id", requireAuth, c.Patrol.DeleteLog)
	}

	// --- Users ---
	// user accounts are never public, reads included
	users := router.Group("/users", requireAuth)
	{
		users.GET("", c.User.ListUsers)
		users.GET("/:id", c.User.GetUserByID)

		users.POST("", c.User.CreateUser)
		users.PUT("/:id", c.User.UpdateUser)
		users.DELETE("/:id", c.User.DeleteUser)
	}

	// --- Reporting ---
	stats := router.Group("/stats")
	{
		stats.GET("/dashboard", c.Stats.Dashboard)
		stats.GET("/species/:id", c.Stats.SpeciesStatistics)
	}

	export := router.Group("/export")
	{
		export.GET("/species", c.Export.ExportSpecies)
		export.GET("/observations", c.Export.ExportObservations)
	}
}
