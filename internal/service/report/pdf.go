package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// MonthlyPDF renders the monthly report as a landscape A4 table.
func (s *ReportServiceImpl) MonthlyPDF(ctx context.Context, month, year int) ([]byte, error) {
	result, err := s.Monthly(ctx, month, year)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Monthly staff report - %s %d", time.Month(month).String(), year))
	pdf.Ln(12)

	headers := []string{"Employee", "Role", "Shifts", "Basic", "Bonus", "Penalty", "Shortage", "Avg revenue", "Rating", "Leader bonus", "Total"}
	widths := []float64{45, 22, 14, 22, 22, 22, 22, 26, 32, 24, 24}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range result.Rows {
		cells := []string{
			row.EmployeeName,
			row.Role,
			fmt.Sprintf("%d", row.ShiftCount),
			row.BasicSum.StringFixed(2),
			row.BonusSum.StringFixed(2),
			row.PenaltySum.StringFixed(2),
			row.ShortageSum.StringFixed(2),
			row.AvgRevenue.StringFixed(2),
			row.Rating,
			row.LeaderBonus.StringFixed(2),
			row.GrandTotal.StringFixed(2),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
