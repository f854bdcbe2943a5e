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

type firestoreSessionRepository struct {
	client *firestore.Client
}

func NewFirestoreSessionRepository(client *firestore.Client) repository.SessionRepository {
	return &firestoreSessionRepository{client: client}
}

func (r *firestoreSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to create session", err)
	}

	return nil
}

func (r *firestoreSessionRepository) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	doc, err := r.client.Collection("sessions").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Session", err)
		}
		return nil, errors.Internal("Failed to get session", err)
	}

	var session entity.Session
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse session data", err)
	}

	return &session, nil
}

func (r *firestoreSessionRepository) Update(ctx context.Context, session *entity.Session) error {
	_, err := r.client.Collection("sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to update session", err)
	}

	return nil
}

func (r *firestoreSessionRepository) ListByTutor(ctx context.Context, tutorID, status string) ([]*entity.Session, error) {
	query := r.client.Collection("sessions").Where("tutorId", "==", tutorID)
	if status != "" {
		query = query.Where("status", "==", status)
	}

	return r.collect(query.Documents(ctx))
}

func (r *firestoreSessionRepository) ListByStudent(ctx context.Context, studentID string) ([]*entity.Session, error) {
	query := r.client.Collection("sessions").Where("studentId", "==", studentID)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreSessionRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Session, error) {
	query := r.client.Collection("sessions").
		Where("createdAt", ">=", start).
		Where("createdAt", "<=", end)

	return r.collect(query.Documents(ctx))
}

func (r *firestoreSessionRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Session, error) {
	var sessions []*entity.Session

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list sessions", err)
		}

		var session entity.Session
		if err := doc.DataTo(&session); err != nil {
			return nil, errors.Internal("Failed to parse session data", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}
