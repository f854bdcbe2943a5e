package router

import (
	"github.com/labstack/echo/v4"

	"tutorbridge/internal/adapter/api/handler"
	"tutorbridge/internal/adapter/api/middleware"
	"tutorbridge/internal/domain/entity"
)

func SetupTutorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	tutorHandler := handler.GetTutorHandler()

	// Public tutor reviews
	e.GET("/api/tutors/:tutorId/reviews", tutorHandler.ListReviews)

	tutors := e.Group("/api/tutors")
	tutors.Use(authMiddleware.Authenticate)
	tutors.Use(roleMiddleware.Require(entity.RoleTutor))

	tutors.GET("/profile", tutorHandler.GetProfile)
	tutors.PUT("/profile", tutorHandler.UpdateProfile)
	tutors.GET("/session-requests", tutorHandler.ListSessionRequests)
	tutors.POST("/manage-session", tutorHandler.ManageSession)
	tutors.GET("/earnings", tutorHandler.TrackEarnings)
	tutors.PUT("/availability", tutorHandler.UpdateAvailability)
}
