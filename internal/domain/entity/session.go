package entity

import (
	"time"
)

const (
	SessionStatusBooked   = "booked"
	SessionStatusAccepted = "accepted"
	SessionStatusRejected = "rejected"

	// Reserved for the fuller lifecycle
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

const (
	SessionTypeOnline   = "online"
	SessionTypeInPerson = "in-person"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Session is a single scheduled tutoring engagement between one student and
// one tutor. HourlyRate is snapshotted from the tutor at booking time.
type Session struct {
	ID            string    `json:"id" firestore:"id"`
	TutorID       string    `json:"tutor_id" firestore:"tutorId"`
	StudentID     string    `json:"student_id" firestore:"studentId"`
	Subject       string    `json:"subject" firestore:"subject"`
	Date          string    `json:"date" firestore:"date"`
	Time          string    `json:"time" firestore:"time"`
	SessionType   string    `json:"session_type" firestore:"sessionType"`
	Status        string    `json:"status" firestore:"status"`
	PaymentStatus string    `json:"payment_status" firestore:"paymentStatus"`
	HourlyRate    float64   `json:"hourly_rate" firestore:"hourlyRate"`
	DurationHours float64   `json:"duration_hours" firestore:"durationHours"`
	TotalAmount   float64   `json:"total_amount" firestore:"totalAmount"`
	Feedback      string    `json:"feedback,omitempty" firestore:"feedback,omitempty"`
	ReviewID      string    `json:"review_id,omitempty" firestore:"reviewId,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}

// IsDecided reports whether the session has reached a terminal state.
func (s *Session) IsDecided() bool {
	switch s.Status {
	case SessionStatusAccepted, SessionStatusRejected, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}
