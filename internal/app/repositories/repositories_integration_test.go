//go:build integration

package repositories

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wildtrack/wildlife-tracker/internal/app/migrations"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	schema "github.com/wildtrack/wildlife-tracker/migrations"
)

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

// setupDatabase starts a throwaway PostgreSQL, applies the embedded migrations and returns the pool wrapper.
func setupDatabase(t *testing.T) *db.PostgresDB {
	t.Helper()
	if !dockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "wildlife_user",
				"POSTGRES_PASSWORD": "wildlife_password",
				"POSTGRES_DB":       "wildlife_tracker",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://wildlife_user:wildlife_password@%s:%s/wildlife_tracker?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFS(ctx, schema.FS))
	return db.NewFromPool(pool)
}

func createUser(t *testing.T, repos *Repositories, username string) *models.User {
	t.Helper()
	user, err := repos.UserRepository.Create(context.Background(), &models.User{
		Username:       username,
		Email:          username + "@example.org",
		HashedPassword: "hash",
		Role:           models.RoleRanger,
		IsActive:       true,
	})
	require.NoError(t, err)
	return user
}

func TestRepositoriesIntegration(t *testing.T) {
	database := setupDatabase(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	lion, err := repos.SpeciesRepository.Create(ctx, &models.Species{
		CommonName:         "Lion",
		ScientificName:     "Panthera leo leo",
		Category:           models.CategoryAnimal,
		ConservationStatus: models.StatusVulnerable,
	})
	require.NoError(t, err)
	ranger := createUser(t, repos, "ranger1")

	t.Run("species round trip keeps client fields", func(t *testing.T) {
		got, err := repos.SpeciesRepository.GetByID(ctx, lion.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lion", got.CommonName)
		assert.Equal(t, models.CategoryAnimal, got.Category)
		assert.Equal(t, models.StatusVulnerable, got.ConservationStatus)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("duplicate scientific name is rejected", func(t *testing.T) {
		_, err := repos.SpeciesRepository.Create(ctx, &models.Species{
			CommonName:         "Another lion",
			ScientificName:     "Panthera leo leo",
			Category:           models.CategoryAnimal,
			ConservationStatus: models.StatusLeastConcern,
		})
		assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
		assert.Contains(t, err.Error(), "scientific_name")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repos.SpeciesRepository.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		_, err = repos.WaterPointRepository.Update(ctx, &models.WaterPoint{ID: 999999, Name: "x", Status: models.WaterPointActive})
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.ErrorIs(t, repos.ActivityRepository.Delete(ctx, 999999), apperrors.ErrResourceNotFound)
	})

	t.Run("observation with unknown species is an invalid reference", func(t *testing.T) {
		_, err := repos.ObservationRepository.Create(ctx, &models.Observation{
			SpeciesID:       999999,
			ObserverID:      ranger.ID,
			ObservationDate: time.Now().UTC(),
			Count:           1,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
		assert.Contains(t, err.Error(), "species_id")
	})

	t.Run("observation statistics", func(t *testing.T) {
		now := time.Now().UTC()
		for _, date := range []time.Time{now.AddDate(0, 0, -1), now.AddDate(0, 0, -45)} {
			_, err := repos.ObservationRepository.Create(ctx, &models.Observation{
				SpeciesID:       lion.ID,
				ObserverID:      ranger.ID,
				Latitude:        -2.33,
				Longitude:       34.83,
				ObservationDate: date,
				Count:           3,
			})
			require.NoError(t, err)
		}
		_, err := repos.SpeciesRepository.Create(ctx, &models.Species{
			CommonName:         "Baobab",
			ScientificName:     "Adansonia digitata",
			Category:           models.CategoryPlant,
			ConservationStatus: models.StatusLeastConcern,
		})
		require.NoError(t, err)

		total, err := repos.ObservationRepository.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		recent, err := repos.ObservationRepository.CountSince(ctx, now.AddDate(0, 0, -30))
		require.NoError(t, err)
		assert.Equal(t, int64(1), recent)

		bySpecies, err := repos.ObservationRepository.CountBySpecies(ctx)
		require.NoError(t, err)
		require.Len(t, bySpecies, 1)
		assert.Equal(t, lion.ID, bySpecies[0].SpeciesID)
		assert.Equal(t, int64(2), bySpecies[0].Count)

		summary, err := repos.ObservationRepository.SummaryForSpecies(ctx, lion.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.TotalObservations)
		require.NotNil(t, summary.LastObservationDate)

		locations, err := repos.ObservationRepository.Locations(ctx, &lion.ID)
		require.NoError(t, err)
		require.Len(t, locations, 2)
		require.NotNil(t, locations[0].SpeciesName)
		assert.Equal(t, "Lion", *locations[0].SpeciesName)

		list, err := repos.ObservationRepository.List(ctx, dto.ObservationFilter{SpeciesID: &lion.ID}, helpers.NormalizeWindow(0, 1))
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("deleting a referenced species conflicts", func(t *testing.T) {
		err := repos.SpeciesRepository.Delete(ctx, lion.ID)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("batch insert is atomic", func(t *testing.T) {
		batch := []*models.Species{
			{CommonName: "Cheetah", ScientificName: "Acinonyx jubatus", Category: models.CategoryAnimal, ConservationStatus: models.StatusVulnerable},
			{CommonName: "Duplicate", ScientificName: "Panthera leo leo", Category: models.CategoryAnimal, ConservationStatus: models.StatusLeastConcern},
		}
		require.Error(t, repos.SpeciesRepository.CreateMany(ctx, batch))

		exists, err := repos.SpeciesRepository.ExistsByScientificName(ctx, "Acinonyx jubatus")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repos.SpeciesRepository.CreateMany(ctx, batch[:1]))
		assert.NotZero(t, batch[0].ID)
	})

	t.Run("last login is stamped", func(t *testing.T) {
		at := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, repos.UserRepository.UpdateLastLogin(ctx, ranger.ID, at))

		got, err := repos.UserRepository.GetByUsername(ctx, "ranger1")
		require.NoError(t, err)
		require.NotNil(t, got.LastLogin)
		assert.True(t, got.LastLogin.Equal(at))
	})

	t.Run("patrol log filters by route", func(t *testing.T) {
		route, err := repos.PatrolRepository.CreateRoute(ctx, &models.PatrolRoute{Name: "North loop", DifficultyLevel: models.DifficultyHard})
		require.NoError(t, err)

		_, err = repos.PatrolRepository.CreateLog(ctx, &models.PatrolLog{RouteID: &route.ID, RangerID: ranger.ID, PatrolDate: time.Now().UTC()})
		require.NoError(t, err)
		_, err = repos.PatrolRepository.CreateLog(ctx, &models.PatrolLog{RangerID: ranger.ID, PatrolDate: time.Now().UTC()})
		require.NoError(t, err)

		logs, err := repos.PatrolRepository.ListLogs(ctx, dto.PatrolLogFilter{RouteID: &route.ID}, helpers.NormalizeWindow(0, 0))
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})
}
