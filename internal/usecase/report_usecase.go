package usecase

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
	"tutorbridge/internal/domain/repository"
	"tutorbridge/pkg/errors"
	"tutorbridge/pkg/logger"
)

type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

type GenerateReportInput struct {
	ReportType string
	StartDate  time.Time
	EndDate    time.Time
}

// GenerateReport computes metrics over the date range and stores them as a
// report document.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, adminID string, input GenerateReportInput) (*entity.Report, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.BadRequest("End date must be after start date", nil)
	}

	data, err := uc.buildReportData(ctx, input.ReportType, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{
		ReportType:  input.ReportType,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Data:        data,
		GeneratedBy: adminID,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Internal("Failed to store report", err)
	}

	logger.Info("Report %s (%s) generated by admin %s", report.ID, input.ReportType, adminID)
	return report, nil
}

func (uc *ReportUseCase) buildReportData(ctx context.Context, reportType string, start, end time.Time) (map[string]interface{}, error) {
	switch reportType {
	case entity.ReportTypeUserGrowth:
		count, err := uc.userRepo.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, errors.Internal("Failed to count users", err)
		}
		return map[string]interface{}{"new_users": count}, nil

	case entity.ReportTypeSessionCompletion, entity.ReportTypePlatformUsage:
		sessions, err := uc.sessionRepo.ListCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, errors.Internal("Failed to list sessions", err)
		}
		byStatus := make(map[string]int)
		for _, s := range sessions {
			byStatus[s.Status]++
		}
		return map[string]interface{}{
			"total_sessions":     len(sessions),
			"sessions_by_status": byStatus,
		}, nil

	case entity.ReportTypeSubjectPopularity:
		sessions, err := uc.sessionRepo.ListCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, errors.Internal("Failed to list sessions", err)
		}
		bySubject := make(map[string]int)
		for _, s := range sessions {
			bySubject[s.Subject]++
		}
		return map[string]interface{}{"sessions_by_subject": bySubject}, nil

	default:
		return nil, errors.BadRequest("Unknown report type", nil)
	}
}

// ListReports returns stored reports created within the date range.
func (uc *ReportUseCase) ListReports(ctx context.Context, start, end time.Time) ([]*entity.Report, error) {
	if start.IsZero() || end.IsZero() {
		return nil, errors.BadRequest("Start date and end date are required", nil)
	}

	reports, err := uc.reportRepo.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}
	return reports, nil
}
