package entity

import (
	"time"
)

const (
	ReportTypeSessionCompletion = "sessionCompletion"
	ReportTypeUserGrowth        = "userGrowth"
	ReportTypePlatformUsage     = "platformUsage"
	ReportTypeSubjectPopularity = "subjectPopularity"
)

// Report is an admin-generated snapshot of platform metrics over a date range.
// Data content depends on the report type.
type Report struct {
	ID          string                 `json:"id" firestore:"id"`
	ReportType  string                 `json:"report_type" firestore:"reportType"`
	StartDate   time.Time              `json:"start_date" firestore:"startDate"`
	EndDate     time.Time              `json:"end_date" firestore:"endDate"`
	Data        map[string]interface{} `json:"data" firestore:"data"`
	GeneratedBy string                 `json:"generated_by" firestore:"generatedBy"`
	CreatedAt   time.Time              `json:"created_at" firestore:"createdAt"`
}
