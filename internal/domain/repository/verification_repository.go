package repository

import (
	"context"

	"tutorbridge/internal/domain/entity"
)

type VerificationRepository interface {
	Create(ctx context.Context, request *entity.VerificationRequest) error
	// GetPendingByTutor returns the unique pending request for a tutor, or a
	// not-found error when none exists.
	GetPendingByTutor(ctx context.Context, tutorID string) (*entity.VerificationRequest, error)
	Update(ctx context.Context, request *entity.VerificationRequest) error
	ListByStatus(ctx context.Context, status string) ([]*entity.VerificationRequest, error)
}
