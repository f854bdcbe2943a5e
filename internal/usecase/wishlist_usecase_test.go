package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorbridge/pkg/errors"
)

func TestAddTutorToWishlist(t *testing.T) {
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()
	uc := NewWishlistUseCase(wishlistRepo, userRepo)
	ctx := context.Background()

	tutor := newTutor(userRepo, "tutor", 20)
	student := newStudent(userRepo, "student")

	wishlist, err := uc.AddTutor(ctx, student.ID, tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tutor.ID}, wishlist.Tutors)

	// Adding the same tutor again is a no-op
	wishlist, err = uc.AddTutor(ctx, student.ID, tutor.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tutor.ID}, wishlist.Tutors)
}

func TestAddNonTutorToWishlist(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewWishlistUseCase(newFakeWishlistRepo(), userRepo)
	ctx := context.Background()

	student := newStudent(userRepo, "student")
	other := newStudent(userRepo, "other")

	_, err := uc.AddTutor(ctx, student.ID, other.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = uc.AddTutor(ctx, student.ID, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestRemoveTutorFromWishlist(t *testing.T) {
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()
	uc := NewWishlistUseCase(wishlistRepo, userRepo)
	ctx := context.Background()

	tutorA := newTutor(userRepo, "alpha", 20)
	tutorB := newTutor(userRepo, "beta", 30)
	student := newStudent(userRepo, "student")

	_, err := uc.AddTutor(ctx, student.ID, tutorA.ID)
	require.NoError(t, err)
	_, err = uc.AddTutor(ctx, student.ID, tutorB.ID)
	require.NoError(t, err)

	wishlist, err := uc.RemoveTutor(ctx, student.ID, tutorA.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tutorB.ID}, wishlist.Tutors)

	// Removing a tutor that is not present leaves the list unchanged
	wishlist, err = uc.RemoveTutor(ctx, student.ID, tutorA.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tutorB.ID}, wishlist.Tutors)
}

func TestRemoveTutorWithoutWishlist(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewWishlistUseCase(newFakeWishlistRepo(), userRepo)

	student := newStudent(userRepo, "student")

	_, err := uc.RemoveTutor(context.Background(), student.ID, "anything")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetWishlistResolvesTutors(t *testing.T) {
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()
	uc := NewWishlistUseCase(wishlistRepo, userRepo)
	ctx := context.Background()

	tutor := newTutor(userRepo, "tutor", 35)
	student := newStudent(userRepo, "student")

	// No wishlist yet: empty result, not an error
	tutors, err := uc.GetWishlist(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, tutors)

	_, err = uc.AddTutor(ctx, student.ID, tutor.ID)
	require.NoError(t, err)

	tutors, err = uc.GetWishlist(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, tutor.ID, tutors[0].ID)
	assert.Equal(t, 35.0, tutors[0].HourlyRate)
}

func TestGetWishlistSkipsMissingTutors(t *testing.T) {
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()
	uc := NewWishlistUseCase(wishlistRepo, userRepo)
	ctx := context.Background()

	tutor := newTutor(userRepo, "tutor", 35)
	student := newStudent(userRepo, "student")

	_, err := uc.AddTutor(ctx, student.ID, tutor.ID)
	require.NoError(t, err)

	// Stale entry pointing at a deleted account
	wishlist, err := wishlistRepo.GetByStudent(ctx, student.ID)
	require.NoError(t, err)
	wishlist.Tutors = append(wishlist.Tutors, "deleted-tutor")
	require.NoError(t, wishlistRepo.Save(ctx, wishlist))

	tutors, err := uc.GetWishlist(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, tutors, 1)
	assert.Equal(t, tutor.ID, tutors[0].ID)
}
