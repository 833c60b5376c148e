package employee

import (
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName    string           `json:"full_name"`
	Role        string           `json:"role"`
	BaseSalary  *decimal.Decimal `json:"base_salary"`
	EmployedAt  string           `json:"employed_at"`
	CertifiedAt *string          `json:"certified_at"`
	PhoneNumber *string          `json:"phone_number"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of cashier, hall_admin, trainee, dual_role, staff"})
	}
	if _, ok := validator.IsValidDate(r.EmployedAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "employed_at", Message: "must be a date in YYYY-MM-DD format"})
	}
	if r.CertifiedAt != nil {
		if _, ok := validator.IsValidDate(*r.CertifiedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "certified_at", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name"`
	Role        *string          `json:"role"`
	BaseSalary  *decimal.Decimal `json:"base_salary"`
	EmployedAt  *string          `json:"employed_at"`
	CertifiedAt *string          `json:"certified_at"`
	PhoneNumber *string          `json:"phone_number"`
	Active      *bool            `json:"active"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of cashier, hall_admin, trainee, dual_role, staff"})
	}
	if r.EmployedAt != nil {
		if _, ok := validator.IsValidDate(*r.EmployedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "employed_at", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.CertifiedAt != nil && *r.CertifiedAt != "" {
		if _, ok := validator.IsValidDate(*r.CertifiedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "certified_at", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Role        string          `json:"role"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
	EmployedAt  string          `json:"employed_at"`
	CertifiedAt *string         `json:"certified_at,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	Active      bool            `json:"active"`
}
