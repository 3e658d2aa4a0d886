package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/wildtrack/wildlife-tracker/internal/app/models"
	appRepos "github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
)

// Default administrator credentials. Change the password after the first login.
const (
	AdminUsername = "admin"
	AdminEmail    = "admin@wildlifetracker.com"
	AdminPassword = "admin123"
)

func text(s string) *string { return &s }

// ReferenceSpecies is the catalogue every fresh installation starts with
func ReferenceSpecies() []*appModels.Species {
	return []*appModels.Species{
		{
			CommonName:          "Lion",
			ScientificName:      "Panthera leo leo",
			Category:            appModels.CategoryAnimal,
			ConservationStatus:  appModels.StatusVulnerable,
			Description:         text("West and Central African lion, apex predator of the savanna"),
			HabitatDescription:  text("Open savanna and wooded grassland"),
			Threats:             text("Poaching, human-wildlife conflict, prey depletion"),
			ConservationActions: text("Population monitoring, anti-poaching patrols, conflict mitigation"),
		},
		{
			CommonName:          "Kordofan giraffe",
			ScientificName:      "Giraffa camelopardalis antiquorum",
			Category:            appModels.CategoryAnimal,
			ConservationStatus:  appModels.StatusCriticallyEndangered,
			HabitatDescription:  text("Wooded savanna"),
			Threats:             text("Poaching, habitat loss"),
			ConservationActions: text("Individual identification, habitat protection"),
		},
		{
			CommonName:          "African savanna elephant",
			ScientificName:      "Loxodonta africana",
			Category:            appModels.CategoryAnimal,
			ConservationStatus:  appModels.StatusEndangered,
			HabitatDescription:  text("Savanna, gallery forest and floodplains"),
			Threats:             text("Ivory poaching, habitat fragmentation"),
			ConservationActions: text("Collar tracking, corridor protection"),
		},
		{
			CommonName:         "Giant eland",
			ScientificName:     "Taurotragus derbianus",
			Category:           appModels.CategoryAnimal,
			ConservationStatus: appModels.StatusCriticallyEndangered,
			HabitatDescription: text("Broad-leaved savanna woodland"),
			Threats:            text("Bushmeat hunting, competition with livestock"),
		},
		{
			CommonName:         "Hippopotamus",
			ScientificName:     "Hippopotamus amphibius",
			Category:           appModels.CategoryAnimal,
			ConservationStatus: appModels.StatusVulnerable,
			HabitatDescription: text("Rivers and permanent pools"),
			Threats:            text("Dry season water loss, hunting"),
		},
		{
			CommonName:         "Common ostrich",
			ScientificName:     "Struthio camelus",
			Category:           appModels.CategoryAnimal,
			ConservationStatus: appModels.StatusLeastConcern,
			HabitatDescription: text("Arid open plains"),
		},
		{
			CommonName:         "Nile crocodile",
			ScientificName:     "Crocodylus niloticus",
			Category:           appModels.CategoryAnimal,
			ConservationStatus: appModels.StatusLeastConcern,
			HabitatDescription: text("Rivers, lakes and marshes"),
		},
		{
			CommonName:         "African mahogany",
			ScientificName:     "Afzelia africana",
			Category:           appModels.CategoryPlant,
			ConservationStatus: appModels.StatusVulnerable,
			HabitatDescription: text("Dry forest and savanna woodland"),
			Threats:            text("Selective logging, overgrazing of seedlings"),
		},
		{
			CommonName:         "Desert date",
			ScientificName:     "Balanites aegyptiaca",
			Category:           appModels.CategoryPlant,
			ConservationStatus: appModels.StatusLeastConcern,
			HabitatDescription: text("Sahelian savanna"),
		},
		{
			CommonName:         "Red acacia",
			ScientificName:     "Acacia seyal",
			Category:           appModels.CategoryPlant,
			ConservationStatus: appModels.StatusLeastConcern,
			HabitatDescription: text("Seasonally flooded clay plains"),
		},
	}
}

// CreateDefaultData creates the reference species and the admin account when they don't exist.
// It keeps going after a failure and returns every error it met.
func CreateDefaultData(ctx context.Context, speciesRepo appRepos.ISpeciesRepository, userRepo appRepos.IUserRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (species, admin user)...")
	var finalErr error

	created := 0
	for _, species := range ReferenceSpecies() {
		exists, err := speciesRepo.ExistsByScientificName(ctx, species.ScientificName)
		if err != nil {
			lgr.Error().Err(err).Str("scientificName", species.ScientificName).Msg("Error checking reference species")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if _, err := speciesRepo.Create(ctx, species); err != nil {
			lgr.Error().Err(err).Str("scientificName", species.ScientificName).Msg("Error creating reference species")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}
	lgr.Info().Int("created", created).Msg("Reference species checked")

	// --- Create Default Admin User --- //
	_, err := userRepo.GetByUsername(ctx, AdminUsername)
	switch {
	case err == nil:
		lgr.Info().Msg("Admin user already exists, skipping creation")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		if err := createAdmin(ctx, userRepo, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	default:
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func createAdmin(ctx context.Context, userRepo appRepos.IUserRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin, err := userRepo.Create(ctx, &appModels.User{
		Username:       AdminUsername,
		Email:          AdminEmail,
		HashedPassword: hashedPassword,
		FullName:       text("Administrator"),
		Role:           appModels.RoleAdmin,
		IsActive:       true,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Warn().Int64("adminID", admin.ID).Msg("Default admin user created with the default password")
	return nil
}
