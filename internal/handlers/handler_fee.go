package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/core/domain"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// feeHandler handles HTTP requests related to the fee ledger.
type feeHandler struct {
	feeService portssvc.FeeSvcFacade
}

func newFeeHandler(fs portssvc.FeeSvcFacade) *feeHandler {
	return &feeHandler{feeService: fs}
}

// registerFeeRoutes registers all fee-related routes.
func registerFeeRoutes(rg *gin.RouterGroup, feeService portssvc.FeeSvcFacade) {
	h := newFeeHandler(feeService)

	fees := rg.Group("/fees")
	{
		fees.POST("", h.createFee)
		fees.GET("", h.listFees)
		fees.GET("/:id", h.getFee)
		fees.POST("/:id/pay", h.markFeePaid)
	}

	// yearly default amounts live under the owning client
	clients := rg.Group("/clients/:id")
	{
		clients.GET("/yearly-amounts", h.listYearlyAmounts)
		clients.PUT("/yearly-amounts", h.setYearlyAmount)
		clients.POST("/year-fees", h.createYearFees)
	}
}

func (h *feeHandler) createFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fee, err := h.feeService.CreateFee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create fee", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeeResponse(fee))
}

func (h *feeHandler) listFees(c *gin.Context) {
	filter := portsrepo.FeeFilter{
		ClientID: c.Query("clientId"),
		Status:   domain.FeeStatus(c.Query("status")),
	}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year filter"})
			return
		}
		filter.Year = year
	}

	fees, err := h.feeService.ListFees(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeResponseSlice(fees))
}

func (h *feeHandler) getFee(c *gin.Context) {
	fee, err := h.feeService.GetFeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeResponse(fee))
}

func (h *feeHandler) markFeePaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkFeePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.feeService.MarkFeePaid(c.Request.Context(), c.Param("id"), req, actorUserID); err != nil {
		logger.Error("Failed to mark fee paid", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *feeHandler) listYearlyAmounts(c *gin.Context) {
	amounts, err := h.feeService.ListYearlyAmounts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, amounts)
}

func (h *feeHandler) setYearlyAmount(c *gin.Context) {
	var req dto.SetYearlyAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.feeService.SetYearlyAmount(c.Request.Context(), c.Param("id"), req, actorUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *feeHandler) createYearFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateYearFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.feeService.CreateYearFees(c.Request.Context(), c.Param("id"), req, actorUserID)
	if err != nil {
		logger.Error("Failed to create year fees", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
