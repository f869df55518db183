package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contafacil/honorarios_app/internal/core/domain"
	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// certificateHandler handles HTTP requests related to digital certificates.
type certificateHandler struct {
	certificateService portssvc.CertificateSvcFacade
}

func newCertificateHandler(cs portssvc.CertificateSvcFacade) *certificateHandler {
	return &certificateHandler{certificateService: cs}
}

// registerCertificateRoutes registers all certificate-related routes.
func registerCertificateRoutes(rg *gin.RouterGroup, certificateService portssvc.CertificateSvcFacade) {
	h := newCertificateHandler(certificateService)

	certificates := rg.Group("/certificates")
	{
		certificates.POST("", h.createCertificate)
		certificates.GET("", h.listCertificates)
		certificates.GET("/expiring", h.listExpiring)
		certificates.GET("/:id", h.getCertificate)
		certificates.PUT("/:id", h.updateCertificate)
		certificates.DELETE("/:id", h.deleteCertificate)
	}
}

func (h *certificateHandler) createCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cert, err := h.certificateService.CreateCertificate(c.Request.Context(), req, actorUserID)
	if err != nil {
		logger.Error("Failed to register certificate", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cert)
}

func (h *certificateHandler) listCertificates(c *gin.Context) {
	filter := portsrepo.CertificateFilter{
		Status:   domain.CertificateStatus(c.Query("status")),
		ClientID: c.Query("clientId"),
	}
	certs, err := h.certificateService.ListCertificates(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *certificateHandler) listExpiring(c *gin.Context) {
	withinDays := 30
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days filter"})
			return
		}
		withinDays = parsed
	}

	certs, err := h.certificateService.ListExpiringCertificates(c.Request.Context(), withinDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

func (h *certificateHandler) getCertificate(c *gin.Context) {
	cert, err := h.certificateService.GetCertificateByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *certificateHandler) updateCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cert, err := h.certificateService.UpdateCertificate(c.Request.Context(), c.Param("id"), req, actorUserID)
	if err != nil {
		logger.Error("Failed to update certificate", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *certificateHandler) deleteCertificate(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.certificateService.DeleteCertificate(c.Request.Context(), c.Param("id"), actorUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
