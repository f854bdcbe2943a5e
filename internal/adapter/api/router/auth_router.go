package router

import (
	"github.com/labstack/echo/v4"

	"tutorbridge/internal/adapter/api/handler"
	"tutorbridge/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/check-email", authHandler.CheckEmail)

	// Protected routes
	protected := e.Group("/api/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
