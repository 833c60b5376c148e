package earnings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/earnings"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
	"github.com/cyberclub/staffhub-backend-go/internal/fixtures"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func testAdmin(employedAt time.Time, certifiedAt *time.Time) employee.Employee {
	return employee.Employee{
		ID:          "admin-1",
		FullName:    "Hall Admin",
		Role:        employee.RoleHallAdmin,
		BaseSalary:  d(1000),
		EmployedAt:  employedAt,
		CertifiedAt: certifiedAt,
		Active:      true,
	}
}

func testCashier(employedAt time.Time) employee.Employee {
	return employee.Employee{
		ID:         "cashier-1",
		FullName:   "Cashier",
		Role:       employee.RoleCashier,
		BaseSalary: d(1000),
		EmployedAt: employedAt,
		Active:     true,
	}
}

func TestLookupTier_StepFunction(t *testing.T) {
	t.Parallel()

	// Admin bar table from the standing pay plan:
	// (0, 0.5%) (3000, 1%) (4000, 2%) (6000, 2.5%) (8000, 3%)
	tiers := fixtures.DefaultPayPlan().AdminTiers.Bar

	tests := []struct {
		name        string
		value       float64
		wantPercent string
		wantValue   string
	}{
		{"zero value hits the zero bracket", 0, "0.5", "0"},
		{"below first real threshold", 2999.99, "0.5", "15"},
		{"exactly on a threshold", 3000, "1", "30"},
		{"between thresholds uses the lower bracket on the whole value", 5000, "2", "100"},
		{"top bracket is open ended", 25000, "3", "750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupTier(d(tt.value), tiers)
			assert.True(t, got.Percent.Equal(decimal.RequireFromString(tt.wantPercent)),
				"percent: got %s want %s", got.Percent, tt.wantPercent)
			assert.True(t, got.Value.Equal(decimal.RequireFromString(tt.wantValue)),
				"value: got %s want %s", got.Value, tt.wantValue)
		})
	}
}

func TestLookupTier_NonDecreasing(t *testing.T) {
	t.Parallel()

	tiers := fixtures.DefaultPayPlan().CashierTiers.Bar
	prev := decimal.Zero
	for v := 0.0; v <= 20000; v += 250 {
		got := LookupTier(d(v), tiers)
		assert.True(t, got.Percent.Cmp(prev) >= 0,
			"rate must not decrease as revenue grows: %s < %s at %v", got.Percent, prev, v)
		prev = got.Percent
	}
}

func TestBasicFor_TenureBoundary(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	shiftDate := date(2024, time.June, 15)

	t.Run("tenure exactly at threshold earns the bonus", func(t *testing.T) {
		emp := testAdmin(shiftDate.AddDate(0, 0, -plan.RequiredExperienceDays), nil)
		got := BasicFor(emp, shiftDate, plan)
		assert.True(t, got.TenureBonus.Equal(plan.ExperienceBonus))
	})

	t.Run("one day short earns exactly zero", func(t *testing.T) {
		emp := testAdmin(shiftDate.AddDate(0, 0, -(plan.RequiredExperienceDays-1)), nil)
		got := BasicFor(emp, shiftDate, plan)
		assert.True(t, got.TenureBonus.IsZero())
	})
}

func TestBasicFor_Attestation(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	shiftDate := date(2024, time.June, 15)
	employed := date(2023, time.January, 1)

	t.Run("certified before the shift", func(t *testing.T) {
		cert := date(2024, time.May, 1)
		got := BasicFor(testAdmin(employed, &cert), shiftDate, plan)
		assert.True(t, got.AttestationBonus.Equal(plan.AttestationBonus))
	})

	t.Run("certified on the shift date", func(t *testing.T) {
		cert := shiftDate
		got := BasicFor(testAdmin(employed, &cert), shiftDate, plan)
		assert.True(t, got.AttestationBonus.Equal(plan.AttestationBonus))
	})

	t.Run("certified after the shift", func(t *testing.T) {
		cert := date(2024, time.July, 1)
		got := BasicFor(testAdmin(employed, &cert), shiftDate, plan)
		assert.True(t, got.AttestationBonus.IsZero())
	})

	t.Run("never certified", func(t *testing.T) {
		got := BasicFor(testAdmin(employed, nil), shiftDate, plan)
		assert.True(t, got.AttestationBonus.IsZero())
	})
}

func TestTrainee_AllZero(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	trainee := employee.Employee{
		ID:         "trainee-1",
		Role:       employee.RoleTrainee,
		BaseSalary: decimal.Zero,
		EmployedAt: date(2020, time.January, 1), // well past tenure threshold
	}
	s := shift.Shift{
		Date:                date(2024, time.June, 15),
		BarRevenue:          d(9000),
		GameZoneGross:       d(20000),
		VRRevenue:           d(6000),
		HookahRevenue:       d(4000),
		HallCleaned:         true,
		PublicationLink:     strPtr("https://vk.com/wall-1_1"),
		PublicationVerified: true,
		Shortage:            d(500),
	}

	got := ForShift(s, trainee, shift.PositionCashier, plan)

	assert.True(t, got.Basic.Total.IsZero())
	assert.True(t, got.Bonus.Total.IsZero())
	assert.True(t, got.Bonus.DisciplineAward.IsZero())
	assert.True(t, got.Bonus.Bar.Value.IsZero())
	assert.True(t, got.Final.IsZero())
}

func TestBonusFor_RoleDispatch(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employed := date(2023, time.January, 1)
	s := shift.Shift{
		Date:          date(2024, time.June, 15),
		BarRevenue:    d(5000),
		GameZoneGross: d(9000),
		GameZoneError: d(1000),
		VRRevenue:     d(1500),
		HookahRevenue: d(2000),
		HallCleaned:   true,
	}

	t.Run("hall admin gets cleaning and hookah bonuses", func(t *testing.T) {
		got := BonusFor(s, shift.PositionHallAdmin, testAdmin(employed, nil), plan)
		assert.True(t, got.CleaningBonus.Equal(plan.HallCleaningBonus))
		// 2000 * 0.05 = 100
		assert.True(t, got.HookahBonus.Equal(d(100)), "hookah bonus: %s", got.HookahBonus)
	})

	t.Run("cashier never gets cleaning or hookah bonuses", func(t *testing.T) {
		got := BonusFor(s, shift.PositionCashier, testCashier(employed), plan)
		assert.True(t, got.CleaningBonus.IsZero())
		assert.True(t, got.HookahBonus.IsZero())
	})

	t.Run("game zone bonus is computed on net revenue", func(t *testing.T) {
		got := BonusFor(s, shift.PositionHallAdmin, testAdmin(employed, nil), plan)
		want := LookupTier(d(8000), plan.AdminTiers.GameZone)
		assert.True(t, got.GameZone.Value.Equal(want.Value))
	})
}

func TestBonusFor_Publication(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	employed := date(2023, time.January, 1)
	base := shift.Shift{Date: date(2024, time.June, 15)}

	t.Run("verified link pays out", func(t *testing.T) {
		s := base
		s.PublicationLink = strPtr("https://vk.com/wall-1_1")
		s.PublicationVerified = true
		got := BonusFor(s, shift.PositionCashier, testCashier(employed), plan)
		assert.True(t, got.PublicationBonus.Equal(plan.PublicationBonus))
	})

	t.Run("unverified link pays nothing", func(t *testing.T) {
		s := base
		s.PublicationLink = strPtr("https://vk.com/wall-1_1")
		got := BonusFor(s, shift.PositionCashier, testCashier(employed), plan)
		assert.True(t, got.PublicationBonus.IsZero())
	})

	t.Run("feature disabled pays nothing even when verified", func(t *testing.T) {
		disabled := plan
		disabled.PublicationEnabled = false
		s := base
		s.PublicationLink = strPtr("https://vk.com/wall-1_1")
		s.PublicationVerified = true
		got := BonusFor(s, shift.PositionCashier, testCashier(employed), disabled)
		assert.True(t, got.PublicationBonus.IsZero())
	})
}

// The concrete scenario from the pay regulation: hall admin, bar revenue
// 5000 under the admin table lands in the (4000, 2%) bracket.
func TestScenario_AdminBarBracket(t *testing.T) {
	t.Parallel()

	got := LookupTier(d(5000), fixtures.DefaultPayPlan().AdminTiers.Bar)
	assert.True(t, got.Percent.Equal(d(2)), "percent: %s", got.Percent)
	assert.True(t, got.Value.Equal(d(100)), "value: %s", got.Value)
}

// Cashier scenario: basic 1000, bonus 600, penalty 200, unpaid shortage
// 300 -> remaining bonus 400, before-shortage 1400, final 800.
func TestScenario_CashierShortage(t *testing.T) {
	t.Parallel()

	basic := BasicFor(testCashier(date(2024, time.June, 1)), date(2024, time.June, 15), payplan.Plan{
		RequiredExperienceDays: 90,
	})
	require.True(t, basic.Total.Equal(d(1000)))

	bonus := earningsBonusWithTotal(d(600))
	got := Finalize(basic, bonus, d(200), d(300), false, shift.PositionCashier)

	assert.True(t, got.Retention.Equal(d(200)), "retention: %s", got.Retention)
	assert.True(t, got.Estimated.Equal(d(1600)), "estimated: %s", got.Estimated)
	assert.True(t, got.BeforeShortage.Equal(d(1400)), "before shortage: %s", got.BeforeShortage)
	assert.True(t, got.Final.Equal(d(800)), "final: %s", got.Final)
}

func TestFinalize_ShortageRules(t *testing.T) {
	t.Parallel()

	basic := earningsBasicWithTotal(d(1000))
	bonus := earningsBonusWithTotal(d(600))

	t.Run("unpaid cashier shortage is deducted at double value", func(t *testing.T) {
		with := Finalize(basic, bonus, decimal.Zero, d(250), false, shift.PositionCashier)
		without := Finalize(basic, bonus, decimal.Zero, decimal.Zero, false, shift.PositionCashier)
		assert.True(t, without.Final.Sub(with.Final).Equal(d(500)))
	})

	t.Run("repaid shortage costs nothing", func(t *testing.T) {
		got := Finalize(basic, bonus, decimal.Zero, d(250), true, shift.PositionCashier)
		assert.True(t, got.Final.Equal(d(1600)))
	})

	t.Run("hall admin never incurs the shortage deduction", func(t *testing.T) {
		got := Finalize(basic, bonus, decimal.Zero, d(250), false, shift.PositionHallAdmin)
		assert.True(t, got.Final.Equal(d(1600)))
	})
}

func TestFinalize_PenaltyNeverTouchesBasic(t *testing.T) {
	t.Parallel()

	basic := earningsBasicWithTotal(d(1000))
	bonus := earningsBonusWithTotal(d(600))

	// Penalty far exceeding the bonus part: retention caps at the bonus
	// total and the basic part survives untouched.
	got := Finalize(basic, bonus, d(5000), decimal.Zero, false, shift.PositionHallAdmin)
	assert.True(t, got.Retention.Equal(d(600)))
	assert.True(t, got.Final.Equal(d(1000)))
}

func TestForShift_Deterministic(t *testing.T) {
	t.Parallel()

	plan := fixtures.DefaultPayPlan()
	cert := date(2024, time.January, 10)
	emp := testAdmin(date(2023, time.March, 1), &cert)
	s := shift.Shift{
		Date:          date(2024, time.June, 15),
		AdminID:       &emp.ID,
		BarRevenue:    d(4700.55),
		GameZoneGross: d(12345.67),
		GameZoneError: d(45.67),
		VRRevenue:     d(2100),
		HookahRevenue: d(1333.33),
		HallCleaned:   true,
		AdminPenalty:  d(150),
	}

	first := ForShift(s, emp, shift.PositionHallAdmin, plan)
	second := ForShift(s, emp, shift.PositionHallAdmin, plan)
	assert.Equal(t, first, second)
}

func earningsBasicWithTotal(total decimal.Decimal) (b earnings.BasicPart) {
	b.Salary = total
	b.Total = total
	return b
}

func earningsBonusWithTotal(total decimal.Decimal) (b earnings.BonusPart) {
	b.DisciplineAward = total
	b.Total = total
	return b
}
