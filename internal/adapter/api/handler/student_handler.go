package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tutorbridge/internal/domain/repository"
	"tutorbridge/internal/usecase"
	"tutorbridge/pkg/response"
	"tutorbridge/pkg/utils"
)

type StudentHandler struct {
	userUseCase     *usecase.UserUseCase
	sessionUseCase  *usecase.SessionUseCase
	reviewUseCase   *usecase.ReviewUseCase
	wishlistUseCase *usecase.WishlistUseCase
}

func NewStudentHandler(
	userUseCase *usecase.UserUseCase,
	sessionUseCase *usecase.SessionUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
) *StudentHandler {
	return &StudentHandler{
		userUseCase:     userUseCase,
		sessionUseCase:  sessionUseCase,
		reviewUseCase:   reviewUseCase,
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *StudentHandler) SearchTutors(c echo.Context) error {
	filter := repository.TutorFilter{
		Subject:      c.QueryParam("subject"),
		Location:     c.QueryParam("location"),
		Availability: c.QueryParam("availability"),
	}
	if price := c.QueryParam("price"); price != "" {
		maxPrice, err := strconv.ParseFloat(price, 64)
		if err == nil {
			filter.MaxPrice = maxPrice
		}
	}
	if rating := c.QueryParam("rating"); rating != "" {
		minRating, err := strconv.ParseFloat(rating, 64)
		if err == nil {
			filter.MinRating = minRating
		}
	}

	tutors, err := h.userUseCase.SearchTutors(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	total := int64(len(tutors))
	start := pagination.Offset
	if start > len(tutors) {
		start = len(tutors)
	}
	end := start + pagination.PageSize
	if end > len(tutors) {
		end = len(tutors)
	}

	return response.Paginated(c, tutors[start:end], total, pagination.Page, pagination.PageSize)
}

type bookSessionRequest struct {
	TutorID       string  `json:"tutor_id" validate:"required"`
	Subject       string  `json:"subject" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Time          string  `json:"time" validate:"required"`
	SessionType   string  `json:"session_type" validate:"omitempty,oneof=online in-person"`
	DurationHours float64 `json:"duration_hours" validate:"omitempty,gt=0"`
}

func (h *StudentHandler) BookSession(c echo.Context) error {
	studentID := c.Get("uid").(string)

	var req bookSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.sessionUseCase.BookSession(c.Request().Context(), studentID, usecase.BookSessionInput{
		TutorID:       req.TutorID,
		Subject:       req.Subject,
		Date:          req.Date,
		Time:          req.Time,
		SessionType:   req.SessionType,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, session)
}

func (h *StudentHandler) ListSessions(c echo.Context) error {
	studentID := c.Get("uid").(string)

	sessions, err := h.sessionUseCase.ListStudentSessions(c.Request().Context(), studentID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessions)
}

type reviewRequest struct {
	TutorID string `json:"tutor_id" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=500"`
}

func (h *StudentHandler) SubmitReview(c echo.Context) error {
	studentID := c.Get("uid").(string)

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), studentID, usecase.SubmitReviewInput{
		TutorID: req.TutorID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type wishlistRequest struct {
	TutorID string `json:"tutor_id" validate:"required"`
}

func (h *StudentHandler) AddToWishlist(c echo.Context) error {
	studentID := c.Get("uid").(string)

	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wishlist, err := h.wishlistUseCase.AddTutor(c.Request().Context(), studentID, req.TutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, wishlist)
}

func (h *StudentHandler) RemoveFromWishlist(c echo.Context) error {
	studentID := c.Get("uid").(string)

	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wishlist, err := h.wishlistUseCase.RemoveTutor(c.Request().Context(), studentID, req.TutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wishlist)
}

func (h *StudentHandler) GetWishlist(c echo.Context) error {
	studentID := c.Get("uid").(string)

	tutors, err := h.wishlistUseCase.GetWishlist(c.Request().Context(), studentID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutors)
}
