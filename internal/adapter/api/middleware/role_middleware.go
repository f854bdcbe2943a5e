package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tutorbridge/internal/domain/repository"
)

// RoleMiddleware authorizes an authenticated request by role. The role is
// re-read from the user directory rather than trusted from the token, so a
// role change (verification approval) takes effect immediately.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{userRepo: userRepo}
}

func (m *RoleMiddleware) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify role")
			}

			for _, role := range roles {
				if user.Role == role {
					c.Set("role", user.Role)
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Permission denied, insufficient role")
		}
	}
}
