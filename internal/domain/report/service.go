package report

import "context"

type ReportService interface {
	Monthly(ctx context.Context, month, year int) (MonthlyReportResponse, error)
	MonthlyPDF(ctx context.Context, month, year int) ([]byte, error)
}
