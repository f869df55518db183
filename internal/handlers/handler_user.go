package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to operator accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user-related routes. Account management
// is admin-only; reading one's own record is not.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getCurrentUser)

		admin := users.Group("", middleware.RequireAdmin())
		{
			admin.GET("", h.listUsers)
			admin.GET("/:id", h.getUser)
			admin.PUT("/:id/status", h.updateUserStatus)
			admin.PUT("/:id/role", h.updateUserRole)
			admin.DELETE("/:id", h.deleteUser)
		}
	}
}

func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.ToUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateUserStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.userService.UpdateUserStatus(c.Request.Context(), c.Param("id"), req.Status, actorUserID); err != nil {
		logger.Error("Failed to update user status", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) updateUserRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.userService.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role, actorUserID); err != nil {
		logger.Error("Failed to update user role", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *userHandler) deleteUser(c *gin.Context) {
	actorUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), actorUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
