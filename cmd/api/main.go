package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"tutorbridge/internal/adapter/api"
	"tutorbridge/internal/adapter/api/handler"
	apimiddleware "tutorbridge/internal/adapter/api/middleware"
	"tutorbridge/internal/adapter/api/router"
	"tutorbridge/internal/adapter/repository"
	"tutorbridge/internal/infrastructure/auth"
	"tutorbridge/internal/usecase"
	"tutorbridge/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	sessionRepo := repository.NewFirestoreSessionRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	verificationRepo := repository.NewFirestoreVerificationRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)

	tokenManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := auth.NewBcryptHasher()

	authUseCase := usecase.NewAuthUseCase(userRepo, verificationRepo, tokenManager, hasher)
	userUseCase := usecase.NewUserUseCase(userRepo)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, userRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, userRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, userRepo)
	verificationUseCase := usecase.NewVerificationUseCase(verificationRepo, userRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, sessionRepo, userRepo)

	handler.Setup(authUseCase, userUseCase, sessionUseCase, reviewUseCase, wishlistUseCase, verificationUseCase, reportUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
