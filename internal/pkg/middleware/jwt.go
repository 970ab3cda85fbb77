package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/barbershop-uz/backend/internal/pkg/jwt"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/internal/utils"
)

// JWTAuthMiddleware creates a middleware that verifies the bearer access token
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.AccessSecret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := jwtpkg.UserIDFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set("user_id", userID)

			return next(c)
		}
	}
}
