package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers all receipt-related routes.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:id", h.getReceipt)
	}
}

func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to issue receipt", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

func (h *receiptHandler) listReceipts(c *gin.Context) {
	filter := portsrepo.ReceiptFilter{ClientID: c.Query("clientId")}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year filter"})
			return
		}
		filter.Year = year
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ReceiptResponse, len(receipts))
	for i := range receipts {
		resp[i] = dto.ToReceiptResponse(&receipts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *receiptHandler) getReceipt(c *gin.Context) {
	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
