package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"tutorbridge/internal/usecase"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/response"
)

type AdminHandler struct {
	verificationUseCase *usecase.VerificationUseCase
	reportUseCase       *usecase.ReportUseCase
}

func NewAdminHandler(verificationUseCase *usecase.VerificationUseCase, reportUseCase *usecase.ReportUseCase) *AdminHandler {
	return &AdminHandler{
		verificationUseCase: verificationUseCase,
		reportUseCase:       reportUseCase,
	}
}

func (h *AdminHandler) ListVerificationRequests(c echo.Context) error {
	requests, err := h.verificationUseCase.ListPending(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

type verificationDecisionRequest struct {
	Comment string `json:"comment"`
}

func (h *AdminHandler) VerifyTutor(c echo.Context) error {
	adminID := c.Get("uid").(string)
	tutorID := c.Param("tutorId")

	var req verificationDecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.verificationUseCase.Approve(c.Request().Context(), adminID, tutorID, req.Comment)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *AdminHandler) RejectTutor(c echo.Context) error {
	adminID := c.Get("uid").(string)
	tutorID := c.Param("tutorId")

	var req verificationDecisionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.verificationUseCase.Reject(c.Request().Context(), adminID, tutorID, req.Comment)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *AdminHandler) ListReports(c echo.Context) error {
	start, err := parseDate(c.QueryParam("startDate"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Start date and end date are required", err))
	}
	end, err := parseDate(c.QueryParam("endDate"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Start date and end date are required", err))
	}

	reports, err := h.reportUseCase.ListReports(c.Request().Context(), start, end)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

type generateReportRequest struct {
	ReportType string `json:"report_type" validate:"required,oneof=sessionCompletion userGrowth platformUsage subjectPopularity"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}

func (h *AdminHandler) GenerateReport(c echo.Context) error {
	adminID := c.Get("uid").(string)

	var req generateReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid start date", err))
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid end date", err))
	}

	report, err := h.reportUseCase.GenerateReport(c.Request().Context(), adminID, usecase.GenerateReportInput{
		ReportType: req.ReportType,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.BadRequest("Date is required", nil)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Parse(time.RFC3339, value)
	}
	return t, nil
}
