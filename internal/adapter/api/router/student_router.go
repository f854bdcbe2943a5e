package router

import (
	"github.com/labstack/echo/v4"

	"tutorbridge/internal/adapter/api/handler"
	"tutorbridge/internal/adapter/api/middleware"
	"tutorbridge/internal/domain/entity"
)

func SetupStudentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	studentHandler := handler.GetStudentHandler()

	// Tutor search is open to unauthenticated browsing
	e.GET("/api/students/search-tutors", studentHandler.SearchTutors)

	students := e.Group("/api/students")
	students.Use(authMiddleware.Authenticate)
	students.Use(roleMiddleware.Require(entity.RoleStudent))

	students.POST("/book-session", studentHandler.BookSession)
	students.GET("/sessions", studentHandler.ListSessions)
	students.POST("/review", studentHandler.SubmitReview)
	students.POST("/wishlist/add", studentHandler.AddToWishlist)
	students.POST("/wishlist/remove", studentHandler.RemoveFromWishlist)
	students.GET("/wishlist", studentHandler.GetWishlist)
}
