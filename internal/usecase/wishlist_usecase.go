package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	userRepo     repository.UserRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, userRepo repository.UserRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		userRepo:     userRepo,
	}
}

// AddTutor puts a tutor on the student's wishlist. The wishlist document is
// created on first add; adding a tutor that is already present is a no-op.
func (uc *WishlistUseCase) AddTutor(ctx context.Context, studentID, tutorID string) (*entity.Wishlist, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	now := time.Now()
	wishlist, err := uc.wishlistRepo.GetByStudent(ctx, studentID)
	if err != nil {
		wishlist = &entity.Wishlist{
			StudentID: studentID,
			Tutors:    []string{},
			CreatedAt: now,
		}
	}

	if !wishlist.Contains(tutorID) {
		wishlist.Tutors = append(wishlist.Tutors, tutorID)
	}
	wishlist.UpdatedAt = now

	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, errors.Internal("Failed to save wishlist", err)
	}

	logger.Debug("Tutor %s added to wishlist of student %s", tutorID, studentID)
	return wishlist, nil
}

// RemoveTutor filters a tutor out of the student's wishlist. Removing a tutor
// that is not present succeeds without changing anything.
func (uc *WishlistUseCase) RemoveTutor(ctx context.Context, studentID, tutorID string) (*entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.NotFound("Wishlist", err)
	}

	filtered := wishlist.Tutors[:0]
	for _, id := range wishlist.Tutors {
		if id != tutorID {
			filtered = append(filtered, id)
		}
	}
	wishlist.Tutors = filtered
	wishlist.UpdatedAt = time.Now()

	if err := uc.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, errors.Internal("Failed to save wishlist", err)
	}

	return wishlist, nil
}

type WishlistTutor struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Subjects   []string `json:"subjects"`
	HourlyRate float64  `json:"hourly_rate"`
	Location   string   `json:"location"`
	Rating     float64  `json:"rating"`
}

// GetWishlist resolves the student's wishlist into tutor summaries. Tutors
// whose accounts no longer resolve are skipped.
func (uc *WishlistUseCase) GetWishlist(ctx context.Context, studentID string) ([]WishlistTutor, error) {
	wishlist, err := uc.wishlistRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return []WishlistTutor{}, nil
	}

	tutors := make([]WishlistTutor, 0, len(wishlist.Tutors))
	for _, tutorID := range wishlist.Tutors {
		tutor, err := uc.userRepo.GetByID(ctx, tutorID)
		if err != nil {
			logger.Warn("Wishlist of student %s references missing tutor %s", studentID, tutorID)
			continue
		}
		tutors = append(tutors, WishlistTutor{
			ID:         tutor.ID,
			Name:       tutor.Name,
			Subjects:   tutor.Subjects,
			HourlyRate: tutor.HourlyRate,
			Location:   tutor.Location,
			Rating:     tutor.Rating,
		})
	}

	return tutors, nil
}
