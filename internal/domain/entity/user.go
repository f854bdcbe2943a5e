package entity

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Role         string `json:"role" firestore:"role"`
	ProfileImage string `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`

	// Tutor profile fields
	Qualifications string   `json:"qualifications,omitempty" firestore:"qualifications,omitempty"`
	Bio            string   `json:"bio,omitempty" firestore:"bio,omitempty"`
	Subjects       []string `json:"subjects,omitempty" firestore:"subjects,omitempty"`
	HourlyRate     float64  `json:"hourly_rate,omitempty" firestore:"hourlyRate,omitempty"`
	Location       string   `json:"location,omitempty" firestore:"location,omitempty"`
	Availability   []string `json:"availability,omitempty" firestore:"availability,omitempty"`

	// Aggregate rating maintained by the review workflow.
	// Rating is always RatingSum/RatingCount, or 0 when no reviews exist.
	Rating      float64 `json:"rating" firestore:"rating"`
	RatingSum   float64 `json:"-" firestore:"ratingSum"`
	RatingCount int     `json:"rating_count" firestore:"ratingCount"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsTutor() bool {
	return u.Role == RoleTutor
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
