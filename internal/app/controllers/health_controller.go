package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the database answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness endpoints
type HealthController struct {
	db      Pinger
	version string
}

// NewHealthController creates a new health controller
func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// Root returns the service banner
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Wildlife Tracker API"}))
}

// Health reports the service as healthy and includes the database ping outcome.
// The service stays up when the database does not answer, so the status code is always 200.
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), pingTimeout)
	defer cancel()

	database := "up"
	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Database ping failed during health check")
		database = "down"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:   "healthy",
		Database: database,
		Version:  c.version,
	}))
}
