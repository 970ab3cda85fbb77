package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/barbershop-uz/backend/internal/pkg/middleware"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
)

// AuthHandler handles HTTP requests for authentication and user management
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the auth API routes
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig) {
	users := e.Group("/api/users")

	// Public routes
	users.POST("/register/step1", h.RegisterStep1)
	users.POST("/register/step2", h.RegisterStep2)
	users.POST("/login", h.Login)
	users.POST("/resetpassword/step1", h.ResetPasswordStep1)
	users.POST("/resetpassword/step2", h.ResetPasswordStep2)

	// Routes requiring a valid access token
	users.GET("", h.ListUsers, middleware.JWTAuthMiddleware(jwtConfig))
	users.PUT("/:id", h.UpdateUser, middleware.JWTAuthMiddleware(jwtConfig))
	users.DELETE("/:id", h.DeleteUser, middleware.JWTAuthMiddleware(jwtConfig))
}
