package handlers

import (
	"net/http"
	"strconv"

	portsrepo "github.com/contafacil/honorarios_app/internal/core/ports/repositories"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditHandler exposes the audit trail to admins.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers the audit trail routes, admin-only.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit-logs", middleware.RequireAdmin())
	{
		audit.GET("", h.listAuditLogs)
	}
}

func (h *auditHandler) listAuditLogs(c *gin.Context) {
	filter := portsrepo.AuditLogFilter{
		Actor: c.Query("actor"),
		Table: c.Query("table"),
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		filter.Limit = limit
	}

	entries, err := h.auditService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
