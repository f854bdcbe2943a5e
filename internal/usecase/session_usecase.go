package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

const (
	SessionActionAccept = "accept"
	SessionActionReject = "reject"
)

type SessionUseCase struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

func NewSessionUseCase(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

type BookSessionInput struct {
	TutorID       string
	Subject       string
	Date          string
	Time          string
	SessionType   string
	DurationHours float64
}

// BookSession creates a booking in state "booked", snapshotting the tutor's
// current hourly rate. Overlapping bookings for the same tutor and slot are
// not prevented.
func (uc *SessionUseCase) BookSession(ctx context.Context, studentID string, input BookSessionInput) (*entity.Session, error) {
	tutor, err := uc.userRepo.GetByID(ctx, input.TutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	sessionType := input.SessionType
	if sessionType == "" {
		sessionType = entity.SessionTypeOnline
	}
	duration := input.DurationHours
	if duration <= 0 {
		duration = 1
	}

	session := &entity.Session{
		TutorID:       input.TutorID,
		StudentID:     studentID,
		Subject:       input.Subject,
		Date:          input.Date,
		Time:          input.Time,
		SessionType:   sessionType,
		Status:        entity.SessionStatusBooked,
		PaymentStatus: entity.PaymentStatusPending,
		HourlyRate:    tutor.HourlyRate,
		DurationHours: duration,
		TotalAmount:   tutor.HourlyRate * duration,
		CreatedAt:     time.Now(),
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Internal("Failed to create session", err)
	}

	logger.Info("Session %s booked: student=%s tutor=%s subject=%s", session.ID, studentID, input.TutorID, input.Subject)
	return session, nil
}

// ListSessionRequests returns the tutor's undecided bookings.
func (uc *SessionUseCase) ListSessionRequests(ctx context.Context, tutorID string) ([]*entity.Session, error) {
	sessions, err := uc.sessionRepo.ListByTutor(ctx, tutorID, entity.SessionStatusBooked)
	if err != nil {
		return nil, errors.Internal("Failed to list session requests", err)
	}
	return sessions, nil
}

func (uc *SessionUseCase) ListStudentSessions(ctx context.Context, studentID string) ([]*entity.Session, error) {
	sessions, err := uc.sessionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Internal("Failed to list sessions", err)
	}
	return sessions, nil
}

// DecideSession moves a booked session to accepted or rejected. Only the
// session's tutor may decide it, and a decided session stays decided.
func (uc *SessionUseCase) DecideSession(ctx context.Context, tutorID, sessionID, action string) (*entity.Session, error) {
	if action != SessionActionAccept && action != SessionActionReject {
		return nil, errors.BadRequest("Invalid action", nil)
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil || session.TutorID != tutorID {
		return nil, errors.NotFound("Session", err)
	}

	if session.IsDecided() {
		return nil, errors.Conflict("Session has already been decided", nil)
	}

	if action == SessionActionAccept {
		session.Status = entity.SessionStatusAccepted
	} else {
		session.Status = entity.SessionStatusRejected
	}

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Internal("Failed to update session", err)
	}

	logger.Info("Session %s %sed by tutor %s", sessionID, action, tutorID)
	return session, nil
}

type Earnings struct {
	Earnings          float64 `json:"earnings"`
	CompletedSessions int     `json:"completed_sessions"`
	PendingSessions   int     `json:"pending_sessions"`
}

// TrackEarnings sums hourly rates over the tutor's completed sessions and
// counts completed and still-booked sessions. Pure read.
func (uc *SessionUseCase) TrackEarnings(ctx context.Context, tutorID string) (*Earnings, error) {
	completed, err := uc.sessionRepo.ListByTutor(ctx, tutorID, entity.SessionStatusCompleted)
	if err != nil {
		return nil, errors.Internal("Failed to list completed sessions", err)
	}

	booked, err := uc.sessionRepo.ListByTutor(ctx, tutorID, entity.SessionStatusBooked)
	if err != nil {
		return nil, errors.Internal("Failed to list booked sessions", err)
	}

	var total float64
	for _, s := range completed {
		total += s.HourlyRate
	}

	return &Earnings{
		Earnings:          total,
		CompletedSessions: len(completed),
		PendingSessions:   len(booked),
	}, nil
}
