package discipline

import (
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/validator"
)

type CreateCaseRequest struct {
	EmployeeID string          `json:"employee_id"`
	Seat       string          `json:"seat"`
	ShiftDate  string          `json:"shift_date"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
}

func (r CreateCaseRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !shift.Position(r.Seat).Valid() {
		errs = append(errs, validator.ValidationError{Field: "seat", Message: "must be hall_admin or cashier"})
	}
	if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "shift_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must not be negative"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCaseRequest struct {
	ID     string           `json:"-"`
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason"`
}

func (r UpdateCaseRequest) Validate() error {
	if r.Amount != nil && r.Amount.IsNegative() {
		return validator.ValidationErrors{{Field: "amount", Message: "must not be negative"}}
	}
	return nil
}

type CaseResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Seat       string          `json:"seat"`
	ShiftDate  string          `json:"shift_date"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Status     string          `json:"status"`
	ClosedAt   *string         `json:"closed_at,omitempty"`
}
