package repository

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
	ListByTutor(ctx context.Context, tutorID, status string) ([]*entity.Session, error)
	ListByStudent(ctx context.Context, studentID string) ([]*entity.Session, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Session, error)
}
