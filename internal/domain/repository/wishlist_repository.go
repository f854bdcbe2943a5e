package repository

import (
	"context"

	"tutorbridge/internal/domain/entity"
)

type WishlistRepository interface {
	// GetByStudent returns the student's wishlist, or a not-found error when
	// none has been created yet.
	GetByStudent(ctx context.Context, studentID string) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
