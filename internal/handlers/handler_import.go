package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/ingestion"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles spreadsheet uploads and generation runs.
type importHandler struct {
	importService     portssvc.ImportSvcFacade
	generationService portssvc.GenerationSvcFacade
}

func newImportHandler(is portssvc.ImportSvcFacade, gs portssvc.GenerationSvcFacade) *importHandler {
	return &importHandler{importService: is, generationService: gs}
}

// registerImportRoutes registers the import and generation routes. Both are
// admin-only: a bad import touches the whole ledger.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade, generationService portssvc.GenerationSvcFacade) {
	h := newImportHandler(importService, generationService)

	imports := rg.Group("/imports", middleware.RequireAdmin())
	{
		imports.POST("/spreadsheet", h.importSpreadsheet)
	}
	generation := rg.Group("/generation", middleware.RequireAdmin())
	{
		generation.POST("/all", h.generateAll)
		generation.POST("/current-month", h.generateCurrentMonth)
	}
}

// importSpreadsheet accepts a multipart upload with the workbook under
// "file", plus "year" (required) and "sheet" (optional, defaults to the
// first sheet) form fields.
func (h *importHandler) importSpreadsheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	yearStr := c.PostForm("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing year field"})
		return
	}
	sheet := c.PostForm("sheet")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open upload"})
		return
	}
	defer file.Close()

	rows, sheetName, err := ingestion.LoadWorkbookSheetFromReader(file, sheet)
	if err != nil {
		logger.Warn("Failed to read uploaded workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read workbook: " + err.Error()})
		return
	}

	result, err := h.importService.ImportSheet(c.Request.Context(), rows, sheetName, year)
	if err != nil {
		logger.Error("Import run failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Import run finished",
		slog.String("sheet", result.Sheet),
		slog.Int("year", result.Year),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated))
	c.JSON(http.StatusOK, result)
}

func (h *importHandler) generateAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.generationService.GenerateAll(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Generation run failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *importHandler) generateCurrentMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.generationService.GenerateCurrentMonth(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Current month generation failed", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
