package payplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is a single step of a revenue tier table: revenue amounts at or
// above Threshold (and below the next threshold) earn Rate of the whole
// amount as a bonus.
type Tier struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
}

// TierSet holds the three category tables for one role class.
type TierSet struct {
	Bar      []Tier `json:"bar"`
	GameZone []Tier `json:"game_zone"`
	VR       []Tier `json:"vr"`
}

// Plan is the full pay policy: fixed bonus amounts, thresholds, ratios
// and both role-class tier sets. It is loaded once at startup and passed
// explicitly into every calculation, never read from globals.
type Plan struct {
	ExperienceBonus  decimal.Decimal `json:"experience_bonus"`
	AttestationBonus decimal.Decimal `json:"attestation_bonus"`
	DisciplineAward  decimal.Decimal `json:"discipline_award"`

	HallCleaningBonus  decimal.Decimal `json:"hall_cleaning_bonus"`
	PublicationBonus   decimal.Decimal `json:"publication_bonus"`
	PublicationEnabled bool            `json:"publication_enabled"`
	HookahBonusRatio   decimal.Decimal `json:"hookah_bonus_ratio"`

	RequiredExperienceDays int `json:"required_experience_days"`

	MinimalWorkshifts            int             `json:"minimal_workshifts"`
	AverageBarRevenueCriteria    decimal.Decimal `json:"average_bar_revenue_criteria"`
	AverageHookahRevenueCriteria decimal.Decimal `json:"average_hookah_revenue_criteria"`
	SpecialCategoryBonus         decimal.Decimal `json:"special_category_bonus"`
	CommonCategoryBonus          decimal.Decimal `json:"common_category_bonus"`

	AdminTiers   TierSet `json:"admin_tiers"`
	CashierTiers TierSet `json:"cashier_tiers"`
}

// Validate rejects malformed tier tables at startup so that tier lookup
// is total at calculation time: every table must open with a zero
// threshold and thresholds must be strictly increasing.
func (p Plan) Validate() error {
	sets := map[string]TierSet{
		"admin":   p.AdminTiers,
		"cashier": p.CashierTiers,
	}
	for class, set := range sets {
		tables := map[string][]Tier{
			"bar":       set.Bar,
			"game_zone": set.GameZone,
			"vr":        set.VR,
		}
		for category, tiers := range tables {
			if err := validateTiers(tiers); err != nil {
				return fmt.Errorf("%s %s tiers: %w", class, category, err)
			}
		}
	}
	if p.RequiredExperienceDays < 0 {
		return fmt.Errorf("required_experience_days must not be negative")
	}
	if p.MinimalWorkshifts < 0 {
		return fmt.Errorf("minimal_workshifts must not be negative")
	}
	return nil
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("table is empty")
	}
	if !tiers[0].Threshold.IsZero() {
		return fmt.Errorf("first threshold must be zero, got %s", tiers[0].Threshold)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold.Cmp(tiers[i-1].Threshold) <= 0 {
			return fmt.Errorf("thresholds must be strictly increasing, got %s after %s",
				tiers[i].Threshold, tiers[i-1].Threshold)
		}
	}
	return nil
}
