package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
)

// ==========================================
// DEFAULT PAY PLAN
// ==========================================

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func tiers(pairs ...float64) []payplan.Tier {
	result := make([]payplan.Tier, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, payplan.Tier{
			Threshold: d(pairs[i]),
			Rate:      d(pairs[i+1]),
		})
	}
	return result
}

// DefaultPayPlan returns the standing pay policy of the venue. Amounts
// can be overridden with a JSON file pointed to by PAY_PLAN_PATH.
func DefaultPayPlan() payplan.Plan {
	return payplan.Plan{
		ExperienceBonus:  d(200),
		AttestationBonus: d(200),
		DisciplineAward:  d(200),

		HallCleaningBonus:  d(100),
		PublicationBonus:   d(50),
		PublicationEnabled: true,
		HookahBonusRatio:   d(0.05),

		RequiredExperienceDays: 90,

		MinimalWorkshifts:            5,
		AverageBarRevenueCriteria:    d(3000),
		AverageHookahRevenueCriteria: d(1000),
		SpecialCategoryBonus:         d(500),
		CommonCategoryBonus:          d(500),

		AdminTiers: payplan.TierSet{
			Bar:      tiers(0, 0.005, 3000, 0.01, 4000, 0.02, 6000, 0.025, 8000, 0.03),
			GameZone: tiers(0, 0.005, 8000, 0.01, 10000, 0.015, 14000, 0.02, 18000, 0.025),
			VR:       tiers(0, 0.01, 1000, 0.02, 2000, 0.03, 3000, 0.04, 5000, 0.05),
		},
		CashierTiers: payplan.TierSet{
			Bar:      tiers(0, 0.01, 3000, 0.02, 4000, 0.03, 6000, 0.04, 8000, 0.05),
			GameZone: tiers(0, 0.005, 8000, 0.01, 10000, 0.015, 14000, 0.02, 18000, 0.025),
			VR:       tiers(0, 0.01, 1000, 0.02, 2000, 0.03, 3000, 0.04, 5000, 0.05),
		},
	}
}
