package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/wildtrack/wildlife-tracker/internal/app/controllers"
	appMigrations "github.com/wildtrack/wildlife-tracker/internal/app/migrations"
	appRepos "github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	appRoutes "github.com/wildtrack/wildlife-tracker/internal/app/routes"
	appServices "github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/config"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	appMiddleware "github.com/wildtrack/wildlife-tracker/internal/middleware"
	pkgAuth "github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/filestorage"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/validation"
	"github.com/wildtrack/wildlife-tracker/internal/seed"
	schema "github.com/wildtrack/wildlife-tracker/migrations"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies holds all the application dependencies
type Dependencies struct {
	SpeciesService     appServices.SpeciesService
	ImportService      appServices.ImportService
	ObservationService appServices.ObservationService
	ActivityService    appServices.ActivityService
	WaterPointService  appServices.WaterPointService
	PatrolService      appServices.PatrolService
	UserService        appServices.UserService
	AuthService        appServices.AuthService
	StatsService       appServices.StatsService
	ExportService      appServices.ExportService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	LoginLimiter   *appMiddleware.RateLimiter
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "wildlife-tracker",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	if cfg.UsesFallbackSecret() {
		lgr.Warn().Msg("JWT_SECRET is not set, tokens are signed with the development secret")
	}
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	if dir := cfg.Database.MigrationsDir; dir != "" {
		err = migrator.MigrateFromDirectory(ctx, dir)
	} else {
		err = migrator.MigrateFS(ctx, schema.FS)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		repos := appRepos.NewRepositories(database)
		if err := seed.CreateDefaultData(ctx, repos.SpeciesRepository, repos.UserRepository, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.UploadDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Initialize services
	repos := deps.Repos
	deps.SpeciesService = appServices.NewSpeciesService(repos.SpeciesRepository)
	deps.ImportService = appServices.NewImportService(repos.SpeciesRepository)
	deps.ObservationService = appServices.NewObservationService(repos.ObservationRepository, repos.SpeciesRepository)
	deps.ActivityService = appServices.NewActivityService(repos.ActivityRepository)
	deps.WaterPointService = appServices.NewWaterPointService(repos.WaterPointRepository)
	deps.PatrolService = appServices.NewPatrolService(repos.PatrolRepository)
	deps.UserService = appServices.NewUserService(repos.UserRepository, lgr)
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.JWTService, helpers.SystemClock, lgr)
	deps.StatsService = appServices.NewStatsService(repos.SpeciesRepository, repos.ObservationRepository, helpers.SystemClock)
	deps.ExportService = appServices.NewExportService(repos.SpeciesRepository, repos.ObservationRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.LoginLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	deps.Controllers = appRoutes.Controllers{
		Health:      appControllers.NewHealthController(database, Version),
		Auth:        appControllers.NewAuthController(deps.AuthService, lgr),
		Species:     appControllers.NewSpeciesController(deps.SpeciesService, deps.ImportService, deps.FileStorage, cfg.Server.MaxUploadMB<<20),
		Observation: appControllers.NewObservationController(deps.ObservationService),
		Activity:    appControllers.NewActivityController(deps.ActivityService),
		WaterPoint:  appControllers.NewWaterPointController(deps.WaterPointService),
		Patrol:      appControllers.NewPatrolController(deps.PatrolService),
		User:        appControllers.NewUserController(deps.UserService),
		Stats:       appControllers.NewStatsController(deps.StatsService),
		Export:      appControllers.NewExportController(deps.ExportService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == config.ModeProduction {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter)

	return router, nil
}
