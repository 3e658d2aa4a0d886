package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/metrics"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/spreadsheet"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/validation"
)

// ImportService defines the interface for bulk species imports
type ImportService interface {
	ImportSpeciesFile(ctx context.Context, path string) (*dto.ImportResult, error)
	ImportSpeciesRows(ctx context.Context, rows []spreadsheet.Row) (*dto.ImportResult, error)
}

// importServiceImpl implements the ImportService interface
type importServiceImpl struct {
	speciesRepo repositories.ISpeciesRepository
}

// NewImportService creates a new import service instance
func NewImportService(speciesRepo repositories.ISpeciesRepository) ImportService {
	return &importServiceImpl{
		speciesRepo: speciesRepo,
	}
}

// ImportSpeciesFile reads the workbook at path and imports its rows
func (s *importServiceImpl) ImportSpeciesFile(ctx context.Context, path string) (*dto.ImportResult, error) {
	rows, err := spreadsheet.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Msg("Unreadable species workbook")
		return nil, apperrors.NewUnsupportedFormatError("file is not a readable Excel workbook")
	}
	return s.ImportSpeciesRows(ctx, rows)
}

// ImportSpeciesRows validates every row on its own and commits the survivors in one transaction.
// A bad row is reported and skipped. A failed commit fails the whole import.
func (s *importServiceImpl) ImportSpeciesRows(ctx context.Context, rows []spreadsheet.Row) (*dto.ImportResult, error) {
	var (
		staged  []*models.Species
		rowErrs = []string{}
		skipped int
		seen    = make(map[string]bool)
	)

	for _, row := range rows {
		if row.IsBlank() {
			continue
		}

		species, err := speciesFromRow(row)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %s", row.Index, err))
			continue
		}

		if seen[species.ScientificName] {
			skipped++
			continue
		}
		exists, err := s.speciesRepo.ExistsByScientificName(ctx, species.ScientificName)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("Row %d: %s", row.Index, err))
			continue
		}
		seen[species.ScientificName] = true
		if exists {
			skipped++
			continue
		}

		staged = append(staged, species)
	}

	if err := s.speciesRepo.CreateMany(ctx, staged); err != nil {
		metrics.RecordImport(0, skipped, len(rowErrs), err)
		// not wrapped: a failed commit is a server error whatever the cause
		return nil, fmt.Errorf("failed to commit species import: %v", err)
	}
	metrics.RecordImport(len(staged), skipped, len(rowErrs), nil)

	logger.Info().
		Int("imported", len(staged)).
		Int("skipped", skipped).
		Int("failed", len(rowErrs)).
		Msg("Species import finished")

	return &dto.ImportResult{
		Success:       true,
		ImportedCount: len(staged),
		SkippedCount:  skipped,
		Errors:        rowErrs,
		Message: fmt.Sprintf("Imported %d species, skipped %d duplicates, %d rows rejected",
			len(staged), skipped, len(rowErrs)),
	}, nil
}

// speciesFromRow maps the recognised columns and validates them like a POST /species body
func speciesFromRow(row spreadsheet.Row) (*models.Species, error) {
	req := &dto.CreateSpeciesRequest{
		CommonName:          row.Get("common_name"),
		ScientificName:      row.Get("scientific_name"),
		Category:            models.SpeciesCategory(strings.ToLower(row.Get("category"))),
		ConservationStatus:  models.ConservationStatus(strings.ToUpper(row.Get("conservation_status"))),
		Description:         optionalCell(row, "description"),
		HabitatDescription:  optionalCell(row, "habitat_description"),
		Threats:             optionalCell(row, "threats"),
		ConservationActions: optionalCell(row, "conservation_actions"),
	}

	if raw := row.Get("population_estimate"); raw != "" {
		n, err := wholeNumber(raw)
		if err != nil {
			return nil, apperrors.NewValidationError("population_estimate", "must be a whole number")
		}
		req.PopulationEstimate = &n
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return req.ToModel(), nil
}

func optionalCell(row spreadsheet.Row, column string) *string {
	v := row.Get(column)
	if v == "" {
		return nil
	}
	return &v
}

// wholeNumber accepts "1500" as well as the "1500.0" some spreadsheet tools produce
func wholeNumber(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return int(f), nil
}
