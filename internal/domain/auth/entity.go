package auth

import "time"

// User is an application account. Staff accounts are linked to an
// employee record; the manager account is not.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleStaff
}
