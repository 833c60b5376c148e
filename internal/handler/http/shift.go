package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/earnings"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/response"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/roster"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	UpdateFigures(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	Earnings(w http.ResponseWriter, r *http.Request)
	Planned(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService    shift.ShiftService
	earningsService earnings.EarningsService
	rosterSource    roster.Source
}

func NewShiftHandler(shiftService shift.ShiftService, earningsService earnings.EarningsService, rosterSource roster.Source) ShiftHandler {
	return &ShiftHandlerImpl{
		shiftService:    shiftService,
		earningsService: earningsService,
		rosterSource:    rosterSource,
	}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", created)
}

// GetByDate implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	found, err := h.shiftService.GetByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByMonth implements ShiftHandler.
func (h *ShiftHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodParams(w, r)
	if !ok {
		return
	}

	shifts, err := h.shiftService.ListByMonth(r.Context(), month, year)
	if err != nil {
		slog.Error("List shifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// UpdateFigures implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateFigures(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftFiguresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift figures decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	updated, err := h.shiftService.UpdateFigures(r.Context(), req)
	if err != nil {
		slog.Error("Update shift figures service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Transition implements ShiftHandler.
func (h *ShiftHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	var req shift.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Shift transition decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Date = chi.URLParam(r, "date")

	updated, err := h.shiftService.Transition(r.Context(), req)
	if err != nil {
		slog.Error("Shift transition service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Earnings implements ShiftHandler. Returns the full pay breakdown for
// one employee on one shift, recomputed on demand.
func (h *ShiftHandlerImpl) Earnings(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	breakdown, err := h.earningsService.ForShift(r.Context(), date, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// Planned implements ShiftHandler. Read-only view of the externally
// maintained schedule.
func (h *ShiftHandlerImpl) Planned(w http.ResponseWriter, r *http.Request) {
	month, year, ok := parsePeriodParams(w, r)
	if !ok {
		return
	}

	planned, err := h.rosterSource.Fetch(r.Context(), month, year)
	if err != nil {
		slog.Error("Planned shifts fetch error", "error", err)
		response.InternalServerError(w, "Failed to fetch planned shifts")
		return
	}

	response.Success(w, planned)
}

func parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return time.Time{}, false
	}
	return date, true
}

func parsePeriodParams(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, errM := strconv.Atoi(r.URL.Query().Get("month"))
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	if errM != nil || errY != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return 0, 0, false
	}
	return month, year, true
}
