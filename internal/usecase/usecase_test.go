package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
)

// In-memory repository fakes backing the usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int

	failUpdate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failUpdate {
		return errors.Internal("update failed", nil)
	}
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) SearchTutors(ctx context.Context, filter repository.TutorFilter) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tutors []*entity.User
	for _, user := range r.users {
		if user.Role != entity.RoleTutor {
			continue
		}
		if filter.Subject != "" && !contains(user.Subjects, filter.Subject) {
			continue
		}
		if filter.Location != "" && user.Location != filter.Location {
			continue
		}
		if filter.MaxPrice > 0 && user.HourlyRate > filter.MaxPrice {
			continue
		}
		if filter.MinRating > 0 && user.Rating < filter.MinRating {
			continue
		}
		if filter.Availability != "" && !contains(user.Availability, filter.Availability) {
			continue
		}
		clone := *user
		tutors = append(tutors, &clone)
	}
	return tutors, nil
}

func (r *fakeUserRepo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, user := range r.users {
		if !user.CreatedAt.Before(start) && !user.CreatedAt.After(end) {
			count++
		}
	}
	return count, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	seq      int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == "" {
		r.seq++
		session.ID = fmt.Sprintf("session-%d", r.seq)
	}
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, errors.NotFound("Session", nil)
	}
	clone := *session
	return &clone, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return errors.NotFound("Session", nil)
	}
	clone := *session
	r.sessions[session.ID] = &clone
	return nil
}

func (r *fakeSessionRepo) ListByTutor(ctx context.Context, tutorID, status string) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sessions []*entity.Session
	for _, session := range r.sessions {
		if session.TutorID != tutorID {
			continue
		}
		if status != "" && session.Status != status {
			continue
		}
		clone := *session
		sessions = append(sessions, &clone)
	}
	return sessions, nil
}

func (r *fakeSessionRepo) ListByStudent(ctx context.Context, studentID string) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sessions []*entity.Session
	for _, session := range r.sessions {
		if session.StudentID == studentID {
			clone := *session
			sessions = append(sessions, &clone)
		}
	}
	return sessions, nil
}

func (r *fakeSessionRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sessions []*entity.Session
	for _, session := range r.sessions {
		if !session.CreatedAt.Before(start) && !session.CreatedAt.After(end) {
			clone := *session
			sessions = append(sessions, &clone)
		}
	}
	return sessions, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review
	seq     int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ID == "" {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	clone := *review
	return &clone, nil
}

func (r *fakeReviewRepo) ListByTutor(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.TutorID == tutorID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	return reviews, nil
}

type fakeVerificationRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.VerificationRequest
	seq      int
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{requests: make(map[string]*entity.VerificationRequest)}
}

func (r *fakeVerificationRepo) Create(ctx context.Context, request *entity.VerificationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if request.ID == "" {
		r.seq++
		request.ID = fmt.Sprintf("verification-%d", r.seq)
	}
	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now()
	}
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeVerificationRepo) GetPendingByTutor(ctx context.Context, tutorID string) (*entity.VerificationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, request := range r.requests {
		if request.TutorID == tutorID && request.Status == entity.VerificationStatusPending {
			clone := *request
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Verification request", nil)
}

func (r *fakeVerificationRepo) Update(ctx context.Context, request *entity.VerificationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[request.ID]; !ok {
		return errors.NotFound("Verification request", nil)
	}
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeVerificationRepo) ListByStatus(ctx context.Context, status string) ([]*entity.VerificationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []*entity.VerificationRequest
	for _, request := range r.requests {
		if request.Status == status {
			clone := *request
			requests = append(requests, &clone)
		}
	}
	return requests, nil
}

type fakeWishlistRepo struct {
	mu        sync.Mutex
	wishlists map[string]*entity.Wishlist
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*entity.Wishlist)}
}

func (r *fakeWishlistRepo) GetByStudent(ctx context.Context, studentID string) (*entity.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wishlist, ok := r.wishlists[studentID]
	if !ok {
		return nil, errors.NotFound("Wishlist", nil)
	}
	clone := *wishlist
	clone.Tutors = append([]string(nil), wishlist.Tutors...)
	return &clone, nil
}

func (r *fakeWishlistRepo) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *wishlist
	clone.Tutors = append([]string(nil), wishlist.Tutors...)
	r.wishlists[wishlist.StudentID] = &clone
	return nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entity.Report
	seq     int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entity.Report)}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if report.ID == "" {
		r.seq++
		report.ID = fmt.Sprintf("report-%d", r.seq)
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *fakeReportRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reports []*entity.Report
	for _, report := range r.reports {
		if !report.CreatedAt.Before(start) && !report.CreatedAt.After(end) {
			clone := *report
			reports = append(reports, &clone)
		}
	}
	return reports, nil
}

// Auth collaborators.

type fakeTokenManager struct{}

func (m *fakeTokenManager) GenerateToken(userID, role string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, role), nil
}

func (m *fakeTokenManager) VerifyToken(token string) (string, string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return "", "", errors.Unauthorized("Invalid token", nil)
	}
	return parts[1], parts[2], nil
}

type fakePasswordHasher struct{}

func (h *fakePasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakePasswordHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.Unauthorized("Invalid credentials", nil)
	}
	return nil
}

// Shared test helpers.

func newStudent(repo *fakeUserRepo, name string) *entity.User {
	user := &entity.User{
		Name:      name,
		Email:     name + "@example.com",
		Role:      entity.RoleStudent,
		CreatedAt: time.Now(),
	}
	repo.Create(context.Background(), user)
	return user
}

func newTutor(repo *fakeUserRepo, name string, hourlyRate float64) *entity.User {
	user := &entity.User{
		Name:       name,
		Email:      name + "@example.com",
		Role:       entity.RoleTutor,
		HourlyRate: hourlyRate,
		Location:   "Online",
		CreatedAt:  time.Now(),
	}
	repo.Create(context.Background(), user)
	return user
}
