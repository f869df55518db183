package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers all client-related routes.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PUT("/:id", h.updateClient)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients returns clients filtered by the active flag. ?active=false
// lists the archived ones; the default is the active register.
func (h *clientHandler) listClients(c *gin.Context) {
	active := true
	if v := c.Query("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active filter"})
			return
		}
		active = parsed
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), active)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = dto.ToClientResponse(&clients[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *clientHandler) getClient(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}
