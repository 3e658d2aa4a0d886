package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/services"
	"github.com/wildtrack/wildlife-tracker/internal/middleware"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/metrics"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/spreadsheet"
)

// ExportController streams entity tables as CSV or XLSX downloads
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new export controller
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportSpecies downloads the species catalogue
func (c *ExportController) ExportSpecies(ctx *gin.Context) {
	format, err := spreadsheet.ParseFormat(ctx.Query("format"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sheet, err := c.exportService.SpeciesSheet(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.send(ctx, "species", format, sheet)
}

// ExportObservations downloads observations, optionally restricted by species_id
func (c *ExportController) ExportObservations(ctx *gin.Context) {
	format, err := spreadsheet.ParseFormat(ctx.Query("format"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	speciesID, err := helpers.ParseInt64Query(ctx, "species_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sheet, err := c.exportService.ObservationsSheet(ctx, speciesID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.send(ctx, "observations", format, sheet)
}

// send buffers the encoded sheet before any header is written
func (c *ExportController) send(ctx *gin.Context, entity string, format spreadsheet.Format, sheet spreadsheet.Sheet) {
	var buf bytes.Buffer
	if err := spreadsheet.Write(&buf, format, sheet); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.RecordExport(entity, string(format))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.Filename(entity)))
	ctx.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
