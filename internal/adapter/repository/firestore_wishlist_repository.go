package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
)

// Wishlists are stored one document per student, keyed by student ID.
type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func (r *firestoreWishlistRepository) GetByStudent(ctx context.Context, studentID string) (*entity.Wishlist, error) {
	doc, err := r.client.Collection("wishlists").Doc(studentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Wishlist", err)
		}
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	var wishlist entity.Wishlist
	if err := doc.DataTo(&wishlist); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}

	return &wishlist, nil
}

func (r *firestoreWishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	_, err := r.client.Collection("wishlists").Doc(wishlist.StudentID).Set(ctx, wishlist)
	if err != nil {
		return errors.Internal("Failed to save wishlist", err)
	}

	return nil
}
