package report

import (
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
)

// Rank derives the monthly leaderboards from the aggregates. Employees
// below the minimal shift count are absent from every board, not ranked
// last. Exact ties go to the lowest employee ID so the outcome never
// depends on iteration order.
func Rank(aggs []report.MonthlyAggregate, roles map[string]employee.Role, plan payplan.Plan) map[string]report.Rating {
	eligible := make([]report.MonthlyAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.ShiftCount >= plan.MinimalWorkshifts {
			eligible = append(eligible, agg)
		}
	}

	barLeader := pickLeader(eligible, func(a report.MonthlyAggregate) (decimal.Decimal, bool) {
		return a.BarSum, roles[a.EmployeeID].WorksCashier() && a.BarAvg.Cmp(plan.AverageBarRevenueCriteria) >= 0
	})
	hookahLeader := pickLeader(eligible, func(a report.MonthlyAggregate) (decimal.Decimal, bool) {
		return a.HookahSum, roles[a.EmployeeID].WorksHallAdmin() && a.HookahAvg.Cmp(plan.AverageHookahRevenueCriteria) >= 0
	})
	commonCashier := pickLeader(eligible, func(a report.MonthlyAggregate) (decimal.Decimal, bool) {
		return a.AvgRevenue, roles[a.EmployeeID].WorksCashier()
	})
	commonAdmin := pickLeader(eligible, func(a report.MonthlyAggregate) (decimal.Decimal, bool) {
		return a.AvgRevenue, roles[a.EmployeeID].WorksHallAdmin()
	})

	ratings := make(map[string]report.Rating, len(aggs))
	for _, agg := range aggs {
		id := agg.EmployeeID
		r := report.Rating{
			EmployeeID:   id,
			BarLeader:    id == barLeader,
			HookahLeader: id == hookahLeader,
			CommonLeader: id == commonCashier || id == commonAdmin,
			Bonus:        decimal.Zero,
		}

		category := r.BarLeader || r.HookahLeader
		if r.BarLeader {
			r.Bonus = r.Bonus.Add(plan.SpecialCategoryBonus)
		}
		if r.HookahLeader {
			r.Bonus = r.Bonus.Add(plan.SpecialCategoryBonus)
		}
		if r.CommonLeader {
			r.Bonus = r.Bonus.Add(plan.CommonCategoryBonus)
		}

		switch {
		case category && r.CommonLeader:
			r.Kind = report.LeaderAbsolute
		case category:
			r.Kind = report.LeaderCategory
		case r.CommonLeader:
			r.Kind = report.LeaderCommon
		default:
			r.Kind = report.LeaderNone
		}

		ratings[id] = r
	}
	return ratings
}

// pickLeader returns the employee ID with the highest metric among
// candidates, or "" when nobody qualifies.
func pickLeader(aggs []report.MonthlyAggregate, metric func(report.MonthlyAggregate) (value decimal.Decimal, qualifies bool)) string {
	best := ""
	var bestValue decimal.Decimal
	for _, agg := range aggs {
		value, ok := metric(agg)
		if !ok {
			continue
		}
		if best == "" || value.Cmp(bestValue) > 0 || (value.Equal(bestValue) && agg.EmployeeID < best) {
			best = agg.EmployeeID
			bestValue = value
		}
	}
	return best
}
