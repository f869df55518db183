package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the read-only aggregation endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/years/:year", h.yearSummary)
		reports.GET("/years/:year/payment-methods", h.paymentMethodTotals)
		reports.GET("/clients/:id", h.clientReport)
		reports.GET("/due", h.dueFees)
	}
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return 0, false
	}
	return year, true
}

func (h *reportingHandler) yearSummary(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.GetYearSummary(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) paymentMethodTotals(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	totals, err := h.reportingService.GetPaymentMethodTotals(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *reportingHandler) clientReport(c *gin.Context) {
	report, err := h.reportingService.GetClientReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// dueFees lists the unpaid fees around a (year, month); both default to the
// current date.
func (h *reportingHandler) dueFees(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year filter"})
			return
		}
		year = parsed
	}
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 13 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month filter"})
			return
		}
		month = parsed
	}

	fees, err := h.reportingService.ListDueFees(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fees)
}
