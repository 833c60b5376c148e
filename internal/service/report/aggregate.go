package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	earningscalc "github.com/cyberclub/staffhub-backend-go/internal/service/earnings"
)

// BuildAggregates folds a month of shifts into per-employee aggregates.
// Only verified shifts contribute; unverified ones are provisional and
// filtered out even if the caller passes them in. The fold is a sum in
// every field, so input order never changes the result.
func BuildAggregates(month, year int, shifts []shift.Shift, employees map[string]employee.Employee, plan payplan.Plan) []report.MonthlyAggregate {
	byEmployee := make(map[string]*report.MonthlyAggregate)

	for _, s := range shifts {
		if s.Status != shift.StatusVerified {
			continue
		}
		for _, pos := range []shift.Position{shift.PositionHallAdmin, shift.PositionCashier} {
			idPtr := s.EmployeeID(pos)
			if idPtr == nil {
				// Trainee placeholder seat: nothing to attribute.
				continue
			}
			emp, ok := employees[*idPtr]
			if !ok {
				continue
			}

			agg := byEmployee[emp.ID]
			if agg == nil {
				agg = &report.MonthlyAggregate{EmployeeID: emp.ID, Month: month, Year: year}
				byEmployee[emp.ID] = agg
			}
			accumulate(agg, s, emp, pos, plan)
		}
	}

	result := make([]report.MonthlyAggregate, 0, len(byEmployee))
	for _, agg := range byEmployee {
		finishAverages(agg)
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result
}

func accumulate(agg *report.MonthlyAggregate, s shift.Shift, emp employee.Employee, pos shift.Position, plan payplan.Plan) {
	bd := earningscalc.ForShift(s, emp, pos, plan)

	agg.ShiftCount++
	agg.BasicSum = agg.BasicSum.Add(bd.Basic.Total)
	agg.BonusSum = agg.BonusSum.Add(bd.Bonus.Total)
	agg.PenaltySum = agg.PenaltySum.Add(bd.Penalty)
	agg.EarningsSum = agg.EarningsSum.Add(bd.Final)

	revenue := s.BarRevenue.Add(s.GameZoneNet()).Add(s.VRRevenue).Add(s.HookahRevenue)
	agg.RevenueSum = agg.RevenueSum.Add(revenue)

	switch pos {
	case shift.PositionCashier:
		agg.ShortageSum = agg.ShortageSum.Add(s.Shortage)
		agg.BarSum = agg.BarSum.Add(s.BarRevenue)
	case shift.PositionHallAdmin:
		agg.HookahSum = agg.HookahSum.Add(s.HookahRevenue)
	}
}

// finishAverages derives the per-shift averages, defined as zero for an
// empty month rather than a division error.
func finishAverages(agg *report.MonthlyAggregate) {
	if agg.ShiftCount == 0 {
		return
	}
	n := decimal.NewFromInt(int64(agg.ShiftCount))
	agg.AvgRevenue = agg.RevenueSum.Div(n).Round(2)
	agg.BarAvg = agg.BarSum.Div(n).Round(2)
	agg.HookahAvg = agg.HookahSum.Div(n).Round(2)
}
