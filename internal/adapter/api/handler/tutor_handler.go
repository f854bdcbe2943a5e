package handler

import (
	"github.com/labstack/echo/v4"

	"tutorbridge/internal/usecase"
	"tutorbridge/pkg/response"
	"tutorbridge/pkg/utils"
)

type TutorHandler struct {
	userUseCase    *usecase.UserUseCase
	sessionUseCase *usecase.SessionUseCase
	reviewUseCase  *usecase.ReviewUseCase
}

func NewTutorHandler(
	userUseCase *usecase.UserUseCase,
	sessionUseCase *usecase.SessionUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) *TutorHandler {
	return &TutorHandler{
		userUseCase:    userUseCase,
		sessionUseCase: sessionUseCase,
		reviewUseCase:  reviewUseCase,
	}
}

func (h *TutorHandler) GetProfile(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	tutor, err := h.userUseCase.GetTutorProfile(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}

type updateProfileRequest struct {
	Name           string   `json:"name"`
	Subjects       []string `json:"subjects"`
	Bio            string   `json:"bio"`
	HourlyRate     *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Location       string   `json:"location"`
	Qualifications string   `json:"qualifications"`
	ProfileImage   string   `json:"profile_image"`
}

func (h *TutorHandler) UpdateProfile(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tutor, err := h.userUseCase.UpdateTutorProfile(c.Request().Context(), tutorID, usecase.UpdateTutorProfileInput{
		Name:           req.Name,
		Subjects:       req.Subjects,
		Bio:            req.Bio,
		HourlyRate:     req.HourlyRate,
		Location:       req.Location,
		Qualifications: req.Qualifications,
		ProfileImage:   req.ProfileImage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}

func (h *TutorHandler) ListSessionRequests(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	sessions, err := h.sessionUseCase.ListSessionRequests(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessions)
}

type manageSessionRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Action    string `json:"action" validate:"required"`
}

func (h *TutorHandler) ManageSession(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	var req manageSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.sessionUseCase.DecideSession(c.Request().Context(), tutorID, req.SessionID, req.Action)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

func (h *TutorHandler) TrackEarnings(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	earnings, err := h.sessionUseCase.TrackEarnings(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, earnings)
}

type availabilityRequest struct {
	AvailableDays []string `json:"available_days" validate:"required,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

func (h *TutorHandler) UpdateAvailability(c echo.Context) error {
	tutorID := c.Get("uid").(string)

	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tutor, err := h.userUseCase.UpdateAvailability(c.Request().Context(), tutorID, req.AvailableDays)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, tutor)
}

func (h *TutorHandler) ListReviews(c echo.Context) error {
	tutorID := c.Param("tutorId")

	reviews, err := h.reviewUseCase.ListTutorReviews(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	pagination := utils.GetPaginationParams(c)
	total := int64(len(reviews))
	start := pagination.Offset
	if start > len(reviews) {
		start = len(reviews)
	}
	end := start + pagination.PageSize
	if end > len(reviews) {
		end = len(reviews)
	}

	return response.Paginated(c, reviews[start:end], total, pagination.Page, pagination.PageSize)
}
