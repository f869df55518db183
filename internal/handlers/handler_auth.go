package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/dto"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles login and self-registration.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	userService portssvc.UserSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{authService: as, userService: us}
}

// registerAuthRoutes registers the public authentication routes. Both are
// rate limited per IP since they sit in front of the password check.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.User)

	rate := limiter.Rate{Period: time.Minute, Limit: 10}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(loginLimiter))
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User logged in", slog.String("username", resp.User.Username))
	c.JSON(http.StatusOK, resp)
}

func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("User registered, awaiting approval", slog.String("username", user.Username))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
