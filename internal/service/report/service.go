package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

type ReportServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	plan         payplan.Plan
}

func NewReportService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository, plan payplan.Plan) report.ReportService {
	return &ReportServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		plan:         plan,
	}
}

func (s *ReportServiceImpl) Monthly(ctx context.Context, month, year int) (report.MonthlyReportResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return report.MonthlyReportResponse{}, report.ErrInvalidPeriod
	}

	shifts, err := s.shiftRepo.ListByMonthAndStatus(ctx, month, year, shift.StatusVerified)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list verified shifts: %w", err)
	}

	ids := seatedEmployeeIDs(shifts)
	seated, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	employees := make(map[string]employee.Employee, len(seated))
	roles := make(map[string]employee.Role, len(seated))
	for _, emp := range seated {
		employees[emp.ID] = emp
		roles[emp.ID] = emp.Role
	}

	aggs := BuildAggregates(month, year, shifts, employees, s.plan)
	ratings := Rank(aggs, roles, s.plan)

	rows := make([]report.MonthlyReportRow, 0, len(aggs))
	for _, agg := range aggs {
		emp := employees[agg.EmployeeID]
		rating := ratings[agg.EmployeeID]

		rows = append(rows, report.MonthlyReportRow{
			EmployeeID:   agg.EmployeeID,
			EmployeeName: emp.FullName,
			Role:         string(emp.Role),
			ShiftCount:   agg.ShiftCount,
			BasicSum:     agg.BasicSum,
			BonusSum:     agg.BonusSum,
			ShortageSum:  agg.ShortageSum,
			PenaltySum:   agg.PenaltySum,
			RevenueSum:   agg.RevenueSum,
			AvgRevenue:   agg.AvgRevenue,
			BarSum:       agg.BarSum,
			BarAvg:       agg.BarAvg,
			HookahSum:    agg.HookahSum,
			HookahAvg:    agg.HookahAvg,
			Rating:       string(rating.Kind),
			LeaderBonus:  rating.Bonus,
			EarningsSum:  agg.EarningsSum,
			GrandTotal:   agg.EarningsSum.Add(rating.Bonus),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].GrandTotal.Equal(rows[j].GrandTotal) {
			return rows[i].GrandTotal.GreaterThan(rows[j].GrandTotal)
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})

	return report.MonthlyReportResponse{Month: month, Year: year, Rows: rows}, nil
}

// seatedEmployeeIDs collects the distinct employee IDs holding a seat on
// any of the given shifts.
func seatedEmployeeIDs(shifts []shift.Shift) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, s := range shifts {
		for _, idPtr := range []*string{s.AdminID, s.CashierID} {
			if idPtr == nil {
				continue
			}
			if _, ok := seen[*idPtr]; ok {
				continue
			}
			seen[*idPtr] = struct{}{}
			ids = append(ids, *idPtr)
		}
	}
	return ids
}
