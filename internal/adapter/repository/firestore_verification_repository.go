package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
)

type firestoreVerificationRepository struct {
	client *firestore.Client
}

func NewFirestoreVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &firestoreVerificationRepository{client: client}
}

func (r *firestoreVerificationRepository) Create(ctx context.Context, request *entity.VerificationRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now()
	}

	_, err := r.client.Collection("verification_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create verification request", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) GetPendingByTutor(ctx context.Context, tutorID string) (*entity.VerificationRequest, error) {
	query := r.client.Collection("verification_requests").
		Where("tutorId", "==", tutorID).
		Where("status", "==", entity.VerificationStatusPending).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Verification request", nil)
		}
		return nil, errors.Internal("Failed to query verification request", err)
	}

	var request entity.VerificationRequest
	if err := doc.DataTo(&request); err != nil {
		return nil, errors.Internal("Failed to parse verification request data", err)
	}

	return &request, nil
}

func (r *firestoreVerificationRepository) Update(ctx context.Context, request *entity.VerificationRequest) error {
	_, err := r.client.Collection("verification_requests").Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to update verification request", err)
	}

	return nil
}

func (r *firestoreVerificationRepository) ListByStatus(ctx context.Context, status string) ([]*entity.VerificationRequest, error) {
	query := r.client.Collection("verification_requests").Where("status", "==", status)
	iter := query.Documents(ctx)

	var requests []*entity.VerificationRequest
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list verification requests", err)
		}

		var request entity.VerificationRequest
		if err := doc.DataTo(&request); err != nil {
			return nil, errors.Internal("Failed to parse verification request data", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
