package repository

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
)

// TutorFilter narrows tutor search results. Zero values mean "no filter".
type TutorFilter struct {
	Subject      string
	Location     string
	MaxPrice     float64
	MinRating    float64
	Availability string
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateRole(ctx context.Context, id, role string) error
	SearchTutors(ctx context.Context, filter TutorFilter) ([]*entity.User, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}
