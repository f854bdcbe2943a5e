package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

type VerificationUseCase struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
}

func NewVerificationUseCase(verificationRepo repository.VerificationRepository, userRepo repository.UserRepository) *VerificationUseCase {
	return &VerificationUseCase{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
	}
}

// Approve decides the tutor's pending verification request. The lookup is
// scoped to pending requests, so approving an already-decided request fails
// with not found. Approval also assigns the tutor role on the user record.
func (uc *VerificationUseCase) Approve(ctx context.Context, adminID, tutorID, comment string) (*entity.VerificationRequest, error) {
	request, err := uc.verificationRepo.GetPendingByTutor(ctx, tutorID)
	if err != nil {
		return nil, errors.NotFound("Verification request", err)
	}

	now := time.Now()
	request.Status = entity.VerificationStatusApproved
	request.AdminComment = comment
	request.VerifiedBy = adminID
	request.DecidedAt = &now

	if err := uc.verificationRepo.Update(ctx, request); err != nil {
		return nil, errors.Internal("Failed to update verification request", err)
	}

	if err := uc.userRepo.UpdateRole(ctx, tutorID, entity.RoleTutor); err != nil {
		return nil, errors.Internal("Failed to update user role", err)
	}

	logger.Info("Tutor %s verified by admin %s", tutorID, adminID)
	return request, nil
}

// Reject is symmetric to Approve but leaves the user's role untouched.
func (uc *VerificationUseCase) Reject(ctx context.Context, adminID, tutorID, comment string) (*entity.VerificationRequest, error) {
	request, err := uc.verificationRepo.GetPendingByTutor(ctx, tutorID)
	if err != nil {
		return nil, errors.NotFound("Verification request", err)
	}

	now := time.Now()
	request.Status = entity.VerificationStatusRejected
	request.AdminComment = comment
	request.VerifiedBy = adminID
	request.DecidedAt = &now

	if err := uc.verificationRepo.Update(ctx, request); err != nil {
		return nil, errors.Internal("Failed to update verification request", err)
	}

	logger.Info("Tutor %s verification rejected by admin %s", tutorID, adminID)
	return request, nil
}

type PendingVerification struct {
	Request *entity.VerificationRequest `json:"request"`
	Tutor   *entity.User                `json:"tutor"`
}

// ListPending returns pending requests with their tutor accounts resolved for
// the admin review screen.
func (uc *VerificationUseCase) ListPending(ctx context.Context) ([]PendingVerification, error) {
	requests, err := uc.verificationRepo.ListByStatus(ctx, entity.VerificationStatusPending)
	if err != nil {
		return nil, errors.Internal("Failed to list verification requests", err)
	}

	result := make([]PendingVerification, 0, len(requests))
	for _, request := range requests {
		tutor, err := uc.userRepo.GetByID(ctx, request.TutorID)
		if err != nil {
			logger.Warn("Verification request %s references missing user %s", request.ID, request.TutorID)
			continue
		}
		result = append(result, PendingVerification{Request: request, Tutor: tutor})
	}

	return result, nil
}
