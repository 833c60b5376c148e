package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	FullName    string
	Role        Role
	BaseSalary  decimal.Decimal
	EmployedAt  time.Time
	CertifiedAt *time.Time
	PhoneNumber *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Role string

const (
	RoleCashier   Role = "cashier"
	RoleHallAdmin Role = "hall_admin"
	RoleTrainee   Role = "trainee"
	RoleDualRole  Role = "dual_role"
	RoleStaff     Role = "staff"
)

// WorksCashier reports whether the role puts the employee on the
// cashier-class tier tables and leaderboards.
func (r Role) WorksCashier() bool {
	return r == RoleCashier || r == RoleDualRole
}

// WorksHallAdmin reports whether the role puts the employee on the
// hall-admin-class tier tables and leaderboards.
func (r Role) WorksHallAdmin() bool {
	return r == RoleHallAdmin || r == RoleDualRole
}

func (r Role) IsTrainee() bool {
	return r == RoleTrainee
}

func (r Role) Valid() bool {
	switch r {
	case RoleCashier, RoleHallAdmin, RoleTrainee, RoleDualRole, RoleStaff:
		return true
	}
	return false
}

// TenureDays is the number of whole days between the employment date and
// the given shift date.
func (e Employee) TenureDays(at time.Time) int {
	return int(at.Sub(e.EmployedAt).Hours() / 24)
}

// CertifiedBy reports whether the employee passed certification on or
// before the given date.
func (e Employee) CertifiedBy(at time.Time) bool {
	return e.CertifiedAt != nil && !e.CertifiedAt.After(at)
}
