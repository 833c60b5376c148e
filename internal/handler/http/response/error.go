package response

import (
	"errors"
	"net/http"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/auth"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/chat"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/discipline"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Invalid employee role", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftDateTaken):
		Conflict(w, "A shift already exists for this date")
	case errors.Is(err, shift.ErrShiftVerified):
		Conflict(w, "Verified shift cannot be edited")
	case errors.Is(err, shift.ErrInvalidTransition):
		Conflict(w, "Invalid shift status transition")
	case errors.Is(err, shift.ErrEmployeeNotOnShift):
		NotFound(w, "Employee did not hold a seat on this shift")

	// Discipline domain errors
	case errors.Is(err, discipline.ErrCaseNotFound):
		NotFound(w, "Disciplinary case not found")
	case errors.Is(err, discipline.ErrCaseAlreadyClosed):
		Conflict(w, "Disciplinary case already closed")
	case errors.Is(err, discipline.ErrCaseNotClosed):
		Conflict(w, "Disciplinary case is not closed")

	// Chat domain errors
	case errors.Is(err, chat.ErrMessageNotFound):
		NotFound(w, "Message not found")
	case errors.Is(err, chat.ErrNotRecipient):
		Forbidden(w, "Only the recipient can mark a message read")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
