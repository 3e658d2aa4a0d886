package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/wildtrack/wildlife-tracker/internal/app/controllers"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
)

// newTestRouter mounts controllers without services. Only paths that stop before reaching a
// service may be exercised.
func newTestRouter(limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Minute, TokenIssuer: "test"})

	router := gin.New()
	SetupRouter(router, Controllers{
		Health:      controllers.NewHealthController(nil, "test"),
		Auth:        controllers.NewAuthController(nil, zerolog.Nop()),
		Species:     controllers.NewSpeciesController(nil, nil, nil, 1<<20),
		Observation: controllers.NewObservationController(nil),
		Activity:    controllers.NewActivityController(nil),
		WaterPoint:  controllers.NewWaterPointController(nil),
		Patrol:      controllers.NewPatrolController(nil),
		User:        controllers.NewUserController(nil),
		Stats:       controllers.NewStatsController(nil),
		Export:      controllers.NewExportController(nil),
	}, middleware.NewAuthMiddleware(jwtService), limiter)
	return router
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(60, 10))

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/observations"},
		{http.MethodPut, "/observations/1"},
		{http.MethodDelete, "/observations/1"},
		{http.MethodPost, "/activities"},
		{http.MethodPut, "/activities/1"},
		{http.MethodDelete, "/activities/1"},
		{http.MethodPost, "/water-points"},
		{http.MethodDelete, "/water-points/1"},
		{http.MethodPost, "/patrol-routes"},
		{http.MethodPut, "/patrol-routes/1"},
		{http.MethodPost, "/patrol-logs"},
		{http.MethodDelete, "/patrol-logs/1"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodPost, "/users"},
		{http.MethodPut, "/users/1"},
		{http.MethodDelete, "/users/1"},
	}

	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			req := httptest.NewRequest(p.method, p.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(1, 1))

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.9:5555"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	// the empty body fails validation, which still spends a token
	assert.Equal(t, http.StatusBadRequest, login())
	assert.Equal(t, http.StatusTooManyRequests, login())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(60, 10))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
