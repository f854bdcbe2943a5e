package router

import (
	"github.com/labstack/echo/v4"

	"tutorbridge/internal/adapter/api/handler"
	"tutorbridge/internal/adapter/api/middleware"
	"tutorbridge/internal/domain/entity"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.Require(entity.RoleAdmin))

	admin.GET("/verification-requests", adminHandler.ListVerificationRequests)
	admin.PUT("/verify-tutor/:tutorId", adminHandler.VerifyTutor)
	admin.PUT("/reject-tutor/:tutorId", adminHandler.RejectTutor)
	admin.GET("/reports", adminHandler.ListReports)
	admin.POST("/generate-report", adminHandler.GenerateReport)
}
