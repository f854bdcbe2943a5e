package entity

import (
	"time"
)

// Wishlist is a student's saved-favorites set of tutors. One document per
// student, created lazily on first add. Tutors holds IDs with set semantics.
type Wishlist struct {
	StudentID string    `json:"student_id" firestore:"studentId"`
	Tutors    []string  `json:"tutors" firestore:"tutors"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Contains reports whether tutorID is already in the wishlist.
func (w *Wishlist) Contains(tutorID string) bool {
	for _, id := range w.Tutors {
		if id == tutorID {
			return true
		}
	}
	return false
}
