package usecase

import (
	"context"
	"sync"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

const maxCommentLength = 500

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository

	// Serializes insert-review + update-rating per tutor so concurrent
	// submissions cannot interleave and publish a stale aggregate.
	mu     sync.Mutex
	tutors map[string]*sync.Mutex
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		tutors:     make(map[string]*sync.Mutex),
	}
}

func (uc *ReviewUseCase) tutorLock(tutorID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lock, ok := uc.tutors[tutorID]
	if !ok {
		lock = &sync.Mutex{}
		uc.tutors[tutorID] = lock
	}
	return lock
}

type SubmitReviewInput struct {
	TutorID string
	Rating  *int
	Comment string
}

// SubmitReview persists the review and updates the tutor's aggregate rating.
// The aggregate is maintained as a running sum and count on the user document;
// the displayed rating is always sum/count.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, studentID string, input SubmitReviewInput) (*entity.Review, error) {
	rating := 5
	if input.Rating != nil {
		rating = *input.Rating
	}
	if rating < 1 || rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if len(input.Comment) > maxCommentLength {
		return nil, errors.BadRequest("Comment must be at most 500 characters", nil)
	}

	lock := uc.tutorLock(input.TutorID)
	lock.Lock()
	defer lock.Unlock()

	tutor, err := uc.userRepo.GetByID(ctx, input.TutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	review := &entity.Review{
		TutorID:   input.TutorID,
		StudentID: studentID,
		Rating:    rating,
		Comment:   input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Internal("Failed to create review", err)
	}

	tutor.RatingSum += float64(rating)
	tutor.RatingCount++
	tutor.Rating = tutor.RatingSum / float64(tutor.RatingCount)

	if err := uc.userRepo.Update(ctx, tutor); err != nil {
		// The review is already persisted; the aggregate stays behind until
		// the next recompute.
		logger.Error("Failed to update rating for tutor %s: %v", input.TutorID, err)
		return nil, errors.Internal("Failed to update tutor rating", err)
	}

	logger.Info("Review %s submitted for tutor %s, rating now %.2f over %d reviews",
		review.ID, input.TutorID, tutor.Rating, tutor.RatingCount)
	return review, nil
}

func (uc *ReviewUseCase) ListTutorReviews(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	reviews, err := uc.reviewRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	return reviews, nil
}

// RecomputeRating rebuilds the aggregate from every review referencing the
// tutor. Used to heal the aggregate when a rating update failed after the
// review insert succeeded. Returns 0 when no reviews exist.
func (uc *ReviewUseCase) RecomputeRating(ctx context.Context, tutorID string) (float64, error) {
	lock := uc.tutorLock(tutorID)
	lock.Lock()
	defer lock.Unlock()

	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return 0, errors.NotFound("Tutor", err)
	}

	reviews, err := uc.reviewRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		return 0, errors.Internal("Failed to list reviews", err)
	}

	var sum float64
	for _, r := range reviews {
		sum += float64(r.Rating)
	}

	tutor.RatingSum = sum
	tutor.RatingCount = len(reviews)
	if tutor.RatingCount == 0 {
		tutor.Rating = 0
	} else {
		tutor.Rating = sum / float64(tutor.RatingCount)
	}

	if err := uc.userRepo.Update(ctx, tutor); err != nil {
		return 0, errors.Internal("Failed to update tutor rating", err)
	}

	return tutor.Rating, nil
}
