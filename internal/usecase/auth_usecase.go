package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

type AuthUseCase struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	tokenManager     TokenManager
	hasher           PasswordHasher
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	verificationRepo repository.VerificationRepository,
	tokenManager TokenManager,
	hasher PasswordHasher,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		tokenManager:     tokenManager,
		hasher:           hasher,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.Conflict("Email already registered", nil)
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == entity.RoleTutor {
		user.Location = "Online"
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	// Tutor signups enter the verification workflow immediately
	if user.Role == entity.RoleTutor {
		request := &entity.VerificationRequest{
			TutorID:     user.ID,
			Status:      entity.VerificationStatusPending,
			RequestedAt: now,
		}
		if err := uc.verificationRepo.Create(ctx, request); err != nil {
			logger.Warn("Failed to file verification request for tutor %s: %v", user.ID, err)
		}
	}

	token, err := uc.tokenManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		logger.Debug("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) EmailExists(ctx context.Context, email string) (bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, errors.Internal("Failed to check email", err)
	}
	return user != nil, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
