package earnings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/earnings"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/shift"
)

var two = decimal.NewFromInt(2)
var hundred = decimal.NewFromInt(100)

// LookupTier resolves a revenue amount against a tier table: the rate of
// the greatest threshold not exceeding the value applies to the entire
// amount. A step function, not marginal brackets: a value sitting
// between two thresholds earns the lower bracket's rate on the whole
// value. Total over value >= 0 given the zero-threshold invariant
// enforced by payplan.Plan.Validate.
func LookupTier(value decimal.Decimal, tiers []payplan.Tier) earnings.CategoryBonus {
	rate := decimal.Zero
	for _, t := range tiers {
		if t.Threshold.Cmp(value) > 0 {
			break
		}
		rate = t.Rate
	}
	return earnings.CategoryBonus{
		Percent: rate.Mul(hundred).Round(2),
		Value:   value.Mul(rate).Round(2),
	}
}

// BasicFor computes the fixed portion for one employee on one shift
// date. Trainees short-circuit to zero so the arithmetic path below
// never needs a role check.
func BasicFor(emp employee.Employee, shiftDate time.Time, plan payplan.Plan) earnings.BasicPart {
	if emp.Role.IsTrainee() {
		return earnings.Zero().Basic
	}

	salary := emp.BaseSalary

	tenure := decimal.Zero
	if emp.TenureDays(shiftDate) >= plan.RequiredExperienceDays {
		tenure = plan.ExperienceBonus
	}

	attestation := decimal.Zero
	if emp.CertifiedBy(shiftDate) {
		attestation = plan.AttestationBonus
	}

	return earnings.BasicPart{
		Salary:           salary,
		TenureBonus:      tenure,
		AttestationBonus: attestation,
		Total:            salary.Add(tenure).Add(attestation).Round(2),
	}
}

// BonusFor computes the variable portion for the holder of one seat.
// Role dispatch happens here, in one place: the tier table class follows
// the seat, cleaning and hookah bonuses exist only for the hall admin,
// and the discipline award is a flat good-conduct stipend granted to
// every non-trainee regardless of open cases (penalties are deducted
// separately, in Finalize).
func BonusFor(s shift.Shift, pos shift.Position, emp employee.Employee, plan payplan.Plan) earnings.BonusPart {
	if emp.Role.IsTrainee() {
		return earnings.Zero().Bonus
	}

	tiers := plan.AdminTiers
	if pos == shift.PositionCashier {
		tiers = plan.CashierTiers
	}

	bar := LookupTier(s.BarRevenue, tiers.Bar)
	gameZone := LookupTier(s.GameZoneNet(), tiers.GameZone)
	vr := LookupTier(s.VRRevenue, tiers.VR)

	publication := decimal.Zero
	if plan.PublicationEnabled && s.PublicationLink != nil && s.PublicationVerified {
		publication = plan.PublicationBonus
	}

	cleaning := decimal.Zero
	hookah := decimal.Zero
	if pos == shift.PositionHallAdmin {
		if s.HallCleaned {
			cleaning = plan.HallCleaningBonus
		}
		hookah = s.HookahRevenue.Mul(plan.HookahBonusRatio).Round(2)
	}

	total := plan.DisciplineAward.
		Add(bar.Value).
		Add(gameZone.Value).
		Add(vr.Value).
		Add(publication).
		Add(cleaning).
		Add(hookah).
		Round(2)

	return earnings.BonusPart{
		DisciplineAward:  plan.DisciplineAward,
		Bar:              bar,
		GameZone:         gameZone,
		VR:               vr,
		PublicationBonus: publication,
		CleaningBonus:    cleaning,
		HookahBonus:      hookah,
		Total:            total,
	}
}

// Finalize combines the two parts and applies penalty retention and the
// shortage rule. The penalty can only eat into the bonus part, never the
// basic part. An unpaid cashier shortage is deducted at double its
// amount, once per shift; this is a deliberate deterrent, not a bug.
func Finalize(basic earnings.BasicPart, bonus earnings.BonusPart, penalty, shortage decimal.Decimal, shortagePaid bool, pos shift.Position) earnings.Breakdown {
	remaining := bonus.Total.Sub(penalty)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	retention := bonus.Total.Sub(remaining)

	estimated := bonus.Total.Add(basic.Total).Round(2)
	final := remaining.Add(basic.Total).Round(2)
	beforeShortage := final

	if pos == shift.PositionCashier && shortage.IsPositive() && !shortagePaid {
		final = final.Sub(shortage.Mul(two)).Round(2)
	}

	return earnings.Breakdown{
		Basic:          basic,
		Bonus:          bonus,
		Penalty:        penalty,
		Retention:      retention,
		Shortage:       shortage,
		ShortagePaid:   shortagePaid,
		Estimated:      estimated,
		BeforeShortage: beforeShortage,
		Final:          final,
	}
}

// ForShift runs the full pipeline for the holder of one seat on one
// shift. A deterministic pure function: identical inputs produce a
// bit-identical breakdown.
func ForShift(s shift.Shift, emp employee.Employee, pos shift.Position, plan payplan.Plan) earnings.Breakdown {
	if emp.Role.IsTrainee() {
		return earnings.Zero()
	}

	basic := BasicFor(emp, s.Date, plan)
	bonus := BonusFor(s, pos, emp, plan)

	shortage := decimal.Zero
	shortagePaid := s.ShortagePaid
	if pos == shift.PositionCashier {
		shortage = s.Shortage
	}

	return Finalize(basic, bonus, s.PenaltyFor(pos), shortage, shortagePaid, pos)
}
