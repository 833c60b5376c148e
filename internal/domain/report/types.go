package report

import "github.com/shopspring/decimal"

// MonthlyAggregate is one employee's fold over all their verified shifts
// in a month. Sums are order-independent; averages are defined as zero
// when the shift count is zero.
type MonthlyAggregate struct {
	EmployeeID string
	Month      int
	Year       int

	ShiftCount int

	BasicSum    decimal.Decimal
	BonusSum    decimal.Decimal
	ShortageSum decimal.Decimal
	PenaltySum  decimal.Decimal
	EarningsSum decimal.Decimal

	RevenueSum decimal.Decimal
	AvgRevenue decimal.Decimal

	// Category specialisation metrics: bar revenue counts only from
	// shifts worked as cashier, hookah only from shifts worked as hall
	// admin.
	BarSum    decimal.Decimal
	BarAvg    decimal.Decimal
	HookahSum decimal.Decimal
	HookahAvg decimal.Decimal
}

// LeaderKind classifies an employee's monthly rating.
type LeaderKind string

const (
	LeaderAbsolute LeaderKind = "absolute_leader"
	LeaderCategory LeaderKind = "category_leader"
	LeaderCommon   LeaderKind = "common_leader"
	LeaderNone     LeaderKind = "not_leader"
)

// Rating is one employee's leaderboard outcome plus the resulting
// one-time monthly bonus.
type Rating struct {
	EmployeeID   string
	Kind         LeaderKind
	BarLeader    bool
	HookahLeader bool
	CommonLeader bool
	Bonus        decimal.Decimal
}
