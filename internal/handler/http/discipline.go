package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/response"
)

type DisciplineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DisciplineHandlerImpl struct {
	caseService discipline.CaseService
}

func NewDisciplineHandler(caseService discipline.CaseService) DisciplineHandler {
	return &DisciplineHandlerImpl{caseService: caseService}
}

// Create implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req discipline.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create case decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.caseService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create case service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Disciplinary case created", created)
}

// Get implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.caseService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByEmployee implements DisciplineHandler.
func (h *DisciplineHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	cases, err := h.caseService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("List cases service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cases)
}

// Update implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req discipline.UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update case decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.caseService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update case service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Close implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	closed, err := h.caseService.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Close case service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Disciplinary case closed", closed)
}

// Reopen implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	reopened, err := h.caseService.Reopen(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Reopen case service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Disciplinary case reopened", reopened)
}

// Delete implements DisciplineHandler.
func (h *DisciplineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.caseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete case service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Disciplinary case deleted", nil)
}
