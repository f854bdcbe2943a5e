package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// SearchTutors filters the tutor directory by subject, location, price
// ceiling, rating floor and availability.
func (uc *UserUseCase) SearchTutors(ctx context.Context, filter repository.TutorFilter) ([]*entity.User, error) {
	tutors, err := uc.userRepo.SearchTutors(ctx, filter)
	if err != nil {
		return nil, errors.Internal("Failed to search tutors", err)
	}
	return tutors, nil
}

func (uc *UserUseCase) GetTutorProfile(ctx context.Context, tutorID string) (*entity.User, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}
	return tutor, nil
}

type UpdateTutorProfileInput struct {
	Name           string
	Subjects       []string
	Bio            string
	HourlyRate     *float64
	Location       string
	Qualifications string
	ProfileImage   string
}

// UpdateTutorProfile applies the provided fields, leaving absent ones as-is.
func (uc *UserUseCase) UpdateTutorProfile(ctx context.Context, tutorID string, input UpdateTutorProfileInput) (*entity.User, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	if input.Name != "" {
		tutor.Name = input.Name
	}
	if input.Subjects != nil {
		tutor.Subjects = input.Subjects
	}
	if input.Bio != "" {
		tutor.Bio = input.Bio
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate < 0 {
			return nil, errors.BadRequest("Hourly rate must be a positive number", nil)
		}
		tutor.HourlyRate = *input.HourlyRate
	}
	if input.Location != "" {
		tutor.Location = input.Location
	}
	if input.Qualifications != "" {
		tutor.Qualifications = input.Qualifications
	}
	if input.ProfileImage != "" {
		tutor.ProfileImage = input.ProfileImage
	}
	tutor.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, tutor); err != nil {
		return nil, errors.Internal("Failed to update tutor profile", err)
	}

	return tutor, nil
}

func (uc *UserUseCase) UpdateAvailability(ctx context.Context, tutorID string, days []string) (*entity.User, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil || !tutor.IsTutor() {
		return nil, errors.NotFound("Tutor", err)
	}

	tutor.Availability = days
	tutor.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, tutor); err != nil {
		return nil, errors.Internal("Failed to update availability", err)
	}

	return tutor, nil
}
