package repository

import (
	"context"
	"time"

	"tutorbridge/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Report, error)
}
