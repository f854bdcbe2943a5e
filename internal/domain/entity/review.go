package entity

import (
	"time"
)

// Review is a student's feedback on a tutor. Each review feeds exactly one
// rating update on the tutor's user document.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	TutorID   string    `json:"tutor_id" firestore:"tutorId"`
	StudentID string    `json:"student_id" firestore:"studentId"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
