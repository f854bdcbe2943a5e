package handler

import (
	"tutorbridge/internal/usecase"
)

var (
	authHandler    *AuthHandler
	studentHandler *StudentHandler
	tutorHandler   *TutorHandler
	adminHandler   *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	sessionUseCase *usecase.SessionUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	verificationUseCase *usecase.VerificationUseCase,
	reportUseCase *usecase.ReportUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	studentHandler = NewStudentHandler(userUseCase, sessionUseCase, reviewUseCase, wishlistUseCase)
	tutorHandler = NewTutorHandler(userUseCase, sessionUseCase, reviewUseCase)
	adminHandler = NewAdminHandler(verificationUseCase, reportUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetStudentHandler() *StudentHandler {
	return studentHandler
}

func GetTutorHandler() *TutorHandler {
	return tutorHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
