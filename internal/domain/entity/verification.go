package entity

import (
	"time"
)

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

// VerificationRequest tracks a tutor's pending credential check. Terminal once
// approved or rejected; admin decisions always act on the pending request.
type VerificationRequest struct {
	ID           string     `json:"id" firestore:"id"`
	TutorID      string     `json:"tutor_id" firestore:"tutorId"`
	Status       string     `json:"status" firestore:"status"`
	AdminComment string     `json:"admin_comment,omitempty" firestore:"adminComment,omitempty"`
	VerifiedBy   string     `json:"verified_by,omitempty" firestore:"verifiedBy,omitempty"`
	RequestedAt  time.Time  `json:"requested_at" firestore:"requestedAt"`
	DecidedAt    *time.Time `json:"decided_at,omitempty" firestore:"decidedAt,omitempty"`
}
