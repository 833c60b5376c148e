package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is one day's recorded operating period. Exactly one shift exists
// per date; the date is the natural key used by the rest of the system.
type Shift struct {
	ID   string
	Date time.Time

	// Seat assignments. A nil ID means the seat was held by a trainee
	// placeholder and earns nothing for that shift.
	AdminID   *string
	CashierID *string

	BarRevenue    decimal.Decimal
	GameZoneGross decimal.Decimal
	GameZoneError decimal.Decimal
	VRRevenue     decimal.Decimal
	HookahRevenue decimal.Decimal

	HallCleaned         bool
	TechReportFiled     bool
	PublicationLink     *string
	PublicationVerified bool

	// Penalty totals pre-resolved from closed disciplinary cases dated to
	// this shift, one per seat. Maintained by RecomputePenalties.
	AdminPenalty   decimal.Decimal
	CashierPenalty decimal.Decimal

	Shortage     decimal.Decimal
	ShortagePaid bool

	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GameZoneNet is the game-zone revenue after the error deduction,
// clamped at zero.
func (s Shift) GameZoneNet() decimal.Decimal {
	net := s.GameZoneGross.Sub(s.GameZoneError)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// Position is a seat on a shift, as opposed to an employee's standing
// role: a dual-role employee occupies one position per shift.
type Position string

const (
	PositionHallAdmin Position = "hall_admin"
	PositionCashier   Position = "cashier"
)

func (p Position) Valid() bool {
	return p == PositionHallAdmin || p == PositionCashier
}

// EmployeeID returns the ID of the employee holding the given seat, or
// nil for a trainee placeholder.
func (s Shift) EmployeeID(pos Position) *string {
	if pos == PositionCashier {
		return s.CashierID
	}
	return s.AdminID
}

// PenaltyFor returns the pre-resolved penalty total for the given seat.
func (s Shift) PenaltyFor(pos Position) decimal.Decimal {
	if pos == PositionCashier {
		return s.CashierPenalty
	}
	return s.AdminPenalty
}

// Status is the shift lifecycle. Only verified shifts enter monthly
// aggregation and rating.
type Status string

const (
	StatusNotConfirmed   Status = "not_confirmed"
	StatusUnverified     Status = "unverified"
	StatusWaitCorrection Status = "wait_correction"
	StatusVerified       Status = "verified"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotConfirmed, StatusUnverified, StatusWaitCorrection, StatusVerified:
		return true
	}
	return false
}

// CanTransition encodes the lifecycle:
// not_confirmed -> unverified <-> wait_correction, unverified -> verified.
// Verification is a one-way manager action; re-opening a verified shift
// goes back through wait_correction explicitly.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusNotConfirmed:
		return to == StatusUnverified
	case StatusUnverified:
		return to == StatusWaitCorrection || to == StatusVerified
	case StatusWaitCorrection:
		return to == StatusUnverified
	case StatusVerified:
		return to == StatusWaitCorrection
	}
	return false
}
