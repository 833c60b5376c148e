package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/report"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/fixtures"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testEmployees() map[string]employee.Employee {
	employed := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	return map[string]employee.Employee{
		"adm-1": {ID: "adm-1", FullName: "Admin One", Role: employee.RoleHallAdmin, BaseSalary: d(1000), EmployedAt: employed},
		"adm-2": {ID: "adm-2", FullName: "Admin Two", Role: employee.RoleHallAdmin, BaseSalary: d(1000), EmployedAt: employed},
		"csh-1": {ID: "csh-1", FullName: "Cashier One", Role: employee.RoleCashier, BaseSalary: d(900), EmployedAt: employed},
		"csh-2": {ID: "csh-2", FullName: "Cashier Two", Role: employee.RoleCashier, BaseSalary: d(900), EmployedAt: employed},
	}
}

func verifiedShift(day int, adminID, cashierID string, bar, hookah float64) shift.Shift {
	s := shift.Shift{
		Date:          time.Date(2024, time.June, day, 0, 0, 0, 0, time.UTC),
		BarRevenue:    d(bar),
		GameZoneGross: d(10000),
		HookahRevenue: d(hookah),
		Status:        shift.StatusVerified,
	}
	if adminID != "" {
		s.AdminID = &adminID
	}
	if cashierID != "" {
		s.CashierID = &cashierID
	}
	return s
}

func monthOfShifts(days int) []shift.Shift {
	shifts := make([]shift.Shift, 0, days)
	for day := 1; day <= days; day++ {
		adm, csh := "adm-1", "csh-1"
		if day%2 == 0 {
			adm, csh = "adm-2", "csh-2"
		}
		shifts = append(shifts, verifiedShift(day, adm, csh, 4000+float64(day)*10, 1500+float64(day)))
	}
	return shifts
}

func TestBuildAggregates_OrderIndependent(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employees := testEmployees()
	shifts := monthOfShifts(20)

	base := BuildAggregates(6, 2024, shifts, employees, plan)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		shuffled := make([]shift.Shift, len(shifts))
		copy(shuffled, shifts)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := BuildAggregates(6, 2024, shuffled, employees, plan)
		require.Equal(t, len(base), len(got))
		for i := range base {
			assert.Equal(t, base[i].EmployeeID, got[i].EmployeeID)
			assert.True(t, base[i].BasicSum.Equal(got[i].BasicSum))
			assert.True(t, base[i].BonusSum.Equal(got[i].BonusSum))
			assert.True(t, base[i].RevenueSum.Equal(got[i].RevenueSum))
			assert.True(t, base[i].EarningsSum.Equal(got[i].EarningsSum))
			assert.Equal(t, base[i].ShiftCount, got[i].ShiftCount)
		}
	}
}

func TestBuildAggregates_SkipsUnverified(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employees := testEmployees()

	verified := verifiedShift(1, "adm-1", "csh-1", 5000, 2000)
	pending := verifiedShift(2, "adm-1", "csh-1", 9000, 3000)
	pending.Status = shift.StatusUnverified

	aggs := BuildAggregates(6, 2024, []shift.Shift{verified, pending}, employees, plan)

	for _, agg := range aggs {
		assert.Equal(t, 1, agg.ShiftCount, "unverified shift must not be counted for %s", agg.EmployeeID)
	}
}

func TestBuildAggregates_RoleSpecificCategorySums(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employees := testEmployees()
	s := verifiedShift(1, "adm-1", "csh-1", 5000, 2000)

	aggs := BuildAggregates(6, 2024, []shift.Shift{s}, employees, plan)
	byID := make(map[string]report.MonthlyAggregate)
	for _, agg := range aggs {
		byID[agg.EmployeeID] = agg
	}

	// Bar revenue counts for the cashier seat only, hookah for the admin
	// seat only.
	assert.True(t, byID["csh-1"].BarSum.Equal(d(5000)))
	assert.True(t, byID["csh-1"].HookahSum.IsZero())
	assert.True(t, byID["adm-1"].HookahSum.Equal(d(2000)))
	assert.True(t, byID["adm-1"].BarSum.IsZero())
}

func TestBuildAggregates_ShortageOnlyForCashier(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employees := testEmployees()
	s := verifiedShift(1, "adm-1", "csh-1", 5000, 2000)
	s.Shortage = d(300)

	aggs := BuildAggregates(6, 2024, []shift.Shift{s}, employees, plan)
	byID := make(map[string]report.MonthlyAggregate)
	for _, agg := range aggs {
		byID[agg.EmployeeID] = agg
	}

	assert.True(t, byID["csh-1"].ShortageSum.Equal(d(300)))
	assert.True(t, byID["adm-1"].ShortageSum.IsZero())
}

func eligibleAggregate(id string, shiftCount int, barSum, barAvg, hookahSum, hookahAvg, avgRevenue float64) report.MonthlyAggregate {
	return report.MonthlyAggregate{
		EmployeeID: id,
		ShiftCount: shiftCount,
		BarSum:     d(barSum),
		BarAvg:     d(barAvg),
		HookahSum:  d(hookahSum),
		HookahAvg:  d(hookahAvg),
		AvgRevenue: d(avgRevenue),
	}
}

func testRoles() map[string]employee.Role {
	return map[string]employee.Role{
		"adm-1": employee.RoleHallAdmin,
		"adm-2": employee.RoleHallAdmin,
		"csh-1": employee.RoleCashier,
		"csh-2": employee.RoleCashier,
	}
}

func TestRank_EligibilityGate(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()

	// csh-2 has the highest figures of the month but only worked two
	// shifts: absent from every board, not ranked last.
	aggs := []report.MonthlyAggregate{
		eligibleAggregate("csh-1", plan.MinimalWorkshifts, 40000, 4000, 0, 0, 9000),
		eligibleAggregate("csh-2", 2, 90000, 9000, 0, 0, 20000),
	}

	ratings := Rank(aggs, testRoles(), plan)

	assert.Equal(t, report.LeaderAbsolute, ratings["csh-1"].Kind)
	assert.Equal(t, report.LeaderNone, ratings["csh-2"].Kind)
	assert.True(t, ratings["csh-2"].Bonus.IsZero())
}

func TestRank_CategoryThreshold(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()

	// adm-1 sells the most hookah in absolute terms but misses the
	// average criteria, so the category stays vacant.
	aggs := []report.MonthlyAggregate{
		eligibleAggregate("adm-1", 10, 0, 0, 9000, plan.AverageHookahRevenueCriteria.InexactFloat64()-1, 3000),
	}

	ratings := Rank(aggs, testRoles(), plan)
	assert.False(t, ratings["adm-1"].HookahLeader)
	// Still the common leader of the admin class.
	assert.True(t, ratings["adm-1"].CommonLeader)
	assert.Equal(t, report.LeaderCommon, ratings["adm-1"].Kind)
}

func TestRank_Classification(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()

	aggs := []report.MonthlyAggregate{
		// Best bar sum AND best cashier-class average: absolute leader.
		eligibleAggregate("csh-1", 10, 50000, 5000, 0, 0, 12000),
		// Eligible, no board wins.
		eligibleAggregate("csh-2", 10, 30000, 3500, 0, 0, 9000),
		// Best admin-class average only: common leader.
		eligibleAggregate("adm-1", 10, 0, 0, 5000, 500, 11000),
		// Best hookah sum above criteria: category leader.
		eligibleAggregate("adm-2", 10, 0, 0, 20000, 2000, 8000),
	}

	ratings := Rank(aggs, testRoles(), plan)

	assert.Equal(t, report.LeaderAbsolute, ratings["csh-1"].Kind)
	assert.True(t, ratings["csh-1"].Bonus.Equal(plan.SpecialCategoryBonus.Add(plan.CommonCategoryBonus)))

	assert.Equal(t, report.LeaderNone, ratings["csh-2"].Kind)

	assert.Equal(t, report.LeaderCommon, ratings["adm-1"].Kind)
	assert.True(t, ratings["adm-1"].Bonus.Equal(plan.CommonCategoryBonus))

	assert.Equal(t, report.LeaderCategory, ratings["adm-2"].Kind)
	assert.True(t, ratings["adm-2"].Bonus.Equal(plan.SpecialCategoryBonus))
}

func TestRank_TieGoesToLowestEmployeeID(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()

	aggs := []report.MonthlyAggregate{
		eligibleAggregate("csh-2", 10, 50000, 5000, 0, 0, 9000),
		eligibleAggregate("csh-1", 10, 50000, 5000, 0, 0, 9000),
	}

	ratings := Rank(aggs, testRoles(), plan)
	assert.True(t, ratings["csh-1"].BarLeader)
	assert.False(t, ratings["csh-2"].BarLeader)
	assert.True(t, ratings["csh-1"].CommonLeader)
	assert.False(t, ratings["csh-2"].CommonLeader)
}

func TestFinishAverages_ZeroShifts(t *testing.T) {
	t.Parallel()

	agg := &report.MonthlyAggregate{EmployeeID: "csh-1"}
	finishAverages(agg)
	assert.True(t, agg.AvgRevenue.IsZero())
	assert.True(t, agg.BarAvg.IsZero())
	assert.True(t, agg.HookahAvg.IsZero())
}
