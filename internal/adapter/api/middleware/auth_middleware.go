package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tutorbridge/internal/usecase"
)

type AuthMiddleware struct {
	tokenManager usecase.TokenManager
}

func NewAuthMiddleware(tokenManager usecase.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager}
}

// Authenticate resolves the bearer credential into an acting user identity
// and role, stored on the request context as "uid" and "role".
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, role, err := m.tokenManager.VerifyToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)
		c.Set("role", role)

		return next(c)
	}
}
