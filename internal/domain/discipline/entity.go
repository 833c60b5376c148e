package discipline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

// Case is one disciplinary record. Only closed cases contribute to the
// penalty totals of the shift they are dated to.
type Case struct {
	ID         string
	EmployeeID string
	Seat       shift.Position
	ShiftDate  time.Time
	Amount     decimal.Decimal
	Reason     string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ClosedAt   *time.Time
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}
