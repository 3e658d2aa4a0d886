package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/filestorage"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

// SpeciesController handles species catalogue operations and spreadsheet imports
type SpeciesController struct {
	speciesService services.SpeciesService
	importService  services.ImportService
	fileStorage    filestorage.FileStorage
	maxUploadBytes int64
}

// NewSpeciesController creates a new species controller
func NewSpeciesController(speciesService services.SpeciesService, importService services.ImportService, fileStorage filestorage.FileStorage, maxUploadBytes int64) *SpeciesController {
	return &SpeciesController{
		speciesService: speciesService,
		importService:  importService,
		fileStorage:    fileStorage,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateSpecies creates a new species
// @Summary Create species
// @Tags species
// @Accept json
// @Produce json
// @Param request body dto.CreateSpeciesRequest true "Species to create"
// @Success 201 {object} dto.APIResponse{data=models.Species} "Species created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Scientific name already exists"
// @Router /species [post]
func (c *SpeciesController) CreateSpecies(ctx *gin.Context) {
	var req dto.CreateSpeciesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	species, err := c.speciesService.CreateSpecies(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(species))
}

// ListSpecies lists species
// @Summary List species
// @Tags species
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Param category query string false "animal or plant"
// @Param conservation_status query string false "Red List code"
// @Success 200 {object} dto.APIResponse{data=[]models.Species}
// @Router /species [get]
func (c *SpeciesController) ListSpecies(ctx *gin.Context) {
	var filter dto.SpeciesFilter

	if raw := helpers.ParseStringQuery(ctx, "category"); raw != nil {
		category, ok := models.ParseSpeciesCategory(*raw)
		if !ok {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("category", "must be one of: animal, plant"))
			return
		}
		filter.Category = &category
	}
	if raw := helpers.ParseStringQuery(ctx, "conservation_status"); raw != nil {
		status, ok := models.ParseConservationStatus(*raw)
		if !ok {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("conservation_status", "must be a Red List code"))
			return
		}
		filter.ConservationStatus = &status
	}

	species, err := c.speciesService.ListSpecies(ctx, filter, helpers.ParseWindow(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(species))
}

// GetSpecies retrieves a species by ID
// @Summary Get species by ID
// @Tags species
// @Produce json
// @Param id path int true "Species ID"
// @Success 200 {object} dto.APIResponse{data=models.Species}
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Router /species/{id} [get]
func (c *SpeciesController) GetSpecies(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	species, err := c.speciesService.GetSpeciesByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(species))
}

// UpdateSpecies overwrites the fields present in the body
// @Summary Update species
// @Tags species
// @Accept json
// @Produce json
// @Param id path int true "Species ID"
// @Param request body dto.UpdateSpeciesRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Species}
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Router /species/{id} [put]
func (c *SpeciesController) UpdateSpecies(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateSpeciesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	species, err := c.speciesService.UpdateSpecies(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(species))
}

// DeleteSpecies removes a species
// @Summary Delete species
// @Tags species
// @Produce json
// @Param id path int true "Species ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Species not found"
// @Failure 409 {object} dto.ErrorResponse "Species still has observations"
// @Router /species/{id} [delete]
func (c *SpeciesController) DeleteSpecies(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.speciesService.DeleteSpecies(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Species deleted successfully"}))
}

// ImportExcel imports species rows from an uploaded workbook. The upload is removed once the
// request finishes, whatever the outcome.
// @Summary Import species from Excel
// @Tags species
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or .xls)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse "Missing file or unsupported format"
// @Failure 500 {object} dto.ErrorResponse "Batch could not be committed"
// @Router /species/import-excel [post]
func (c *SpeciesController) ImportExcel(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("file", "is required"))
		return
	}

	if !filestorage.HasExtension(fileHeader.Filename, ".xlsx", ".xls") {
		middleware.HandleAPIError(ctx, apperrors.NewUnsupportedFormatError("Only Excel files (.xlsx, .xls) are supported"))
		return
	}

	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("file",
			fmt.Sprintf("must be at most %d MB", c.maxUploadBytes>>20)))
		return
	}

	path, err := c.fileStorage.SaveFile(fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer func() {
		if err := c.fileStorage.DeleteFile(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to remove imported file")
		}
	}()

	result, err := c.importService.ImportSpeciesFile(ctx, path)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
