package repository

import (
	"context"

	"tutorbridge/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByTutor(ctx context.Context, tutorID string) ([]*entity.Review, error)
}
