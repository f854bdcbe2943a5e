package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) UpdateRole(ctx context.Context, id, role string) error {
	_, err := r.client.Collection("users").Doc(id).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("User", err)
		}
		return errors.Internal("Failed to update user role", err)
	}

	return nil
}

// SearchTutors queries by role and applies the remaining filters per document.
// Firestore allows at most one array-contains clause and one inequality field
// per query, so price, rating and availability are checked after the read.
func (r *firestoreUserRepository) SearchTutors(ctx context.Context, filter repository.TutorFilter) ([]*entity.User, error) {
	query := r.client.Collection("users").Where("role", "==", entity.RoleTutor)
	if filter.Subject != "" {
		query = query.Where("subjects", "array-contains", filter.Subject)
	}
	if filter.Location != "" {
		query = query.Where("location", "==", filter.Location)
	}

	iter := query.Documents(ctx)
	var tutors []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to search tutors", err)
		}

		var tutor entity.User
		if err := doc.DataTo(&tutor); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}

		if filter.MaxPrice > 0 && tutor.HourlyRate > filter.MaxPrice {
			continue
		}
		if filter.MinRating > 0 && tutor.Rating < filter.MinRating {
			continue
		}
		if filter.Availability != "" && !containsString(tutor.Availability, filter.Availability) {
			continue
		}

		tutors = append(tutors, &tutor)
	}

	return tutors, nil
}

func (r *firestoreUserRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	query := r.client.Collection("users").
		Where("createdAt", ">=", start).
		Where("createdAt", "<=", end)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}

	return int64(len(docs)), nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
