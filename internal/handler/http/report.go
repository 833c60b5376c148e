package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodParams(w, r)
	if !ok {
		return
	}

	monthly, err := h.reportService.Monthly(r.Context(), month, year)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// MonthlyPDF implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodParams(w, r)
	if !ok {
		return
	}

	pdf, err := h.reportService.MonthlyPDF(r.Context(), month, year)
	if err != nil {
		slog.Error("Monthly report PDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="monthly-report-%04d-%02d.pdf"`, year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
