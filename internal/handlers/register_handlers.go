package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/contafacil/honorarios_app/internal/apperrors"
	portssvc "github.com/contafacil/honorarios_app/internal/core/ports/services"
	"github.com/contafacil/honorarios_app/internal/middleware"
	"github.com/contafacil/honorarios_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerClientRoutes(v1, services.Client)
	registerFeeRoutes(v1, services.Fee)
	registerImportRoutes(v1, services.Import, services.Generation)
	registerReportingRoutes(v1, services.Reporting)
	registerReceiptRoutes(v1, services.Receipt)
	registerCertificateRoutes(v1, services.Certificate)
	registerUserRoutes(v1, services.User)
	registerAuditRoutes(v1, services.Audit)
}

// respondBindingError answers a 400 with per-field messages when the body
// failed struct validation, or a generic parse message otherwise.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed: " + strings.Join(fields, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}

// respondError translates service errors into HTTP responses. Wrapped
// sentinel errors map to their status; anything else is a 500 with a
// generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
