package report

import "github.com/shopspring/decimal"

// MonthlyReportRow is one employee's line in the human-facing monthly
// report: the aggregate, the rating and the grand total including the
// one-time leader bonus.
type MonthlyReportRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Role         string          `json:"role"`
	ShiftCount   int             `json:"shift_count"`
	BasicSum     decimal.Decimal `json:"basic_sum"`
	BonusSum     decimal.Decimal `json:"bonus_sum"`
	ShortageSum  decimal.Decimal `json:"shortage_sum"`
	PenaltySum   decimal.Decimal `json:"penalty_sum"`
	RevenueSum   decimal.Decimal `json:"revenue_sum"`
	AvgRevenue   decimal.Decimal `json:"avg_revenue"`
	BarSum       decimal.Decimal `json:"bar_sum"`
	BarAvg       decimal.Decimal `json:"bar_avg"`
	HookahSum    decimal.Decimal `json:"hookah_sum"`
	HookahAvg    decimal.Decimal `json:"hookah_avg"`
	Rating       string          `json:"rating"`
	LeaderBonus  decimal.Decimal `json:"leader_bonus"`
	EarningsSum  decimal.Decimal `json:"earnings_sum"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

type MonthlyReportResponse struct {
	Month int                `json:"month"`
	Year  int                `json:"year"`
	Rows  []MonthlyReportRow `json:"rows"`
}
