package earnings

import "github.com/shopspring/decimal"

// BasicPart is the fixed, salary-derived portion of a shift's earnings.
type BasicPart struct {
	Salary           decimal.Decimal `json:"salary"`
	TenureBonus      decimal.Decimal `json:"tenure_bonus"`
	AttestationBonus decimal.Decimal `json:"attestation_bonus"`
	Total            decimal.Decimal `json:"total"`
}

// CategoryBonus is one revenue-tier bonus: the matched rate expressed as
// a percentage plus the resulting value.
type CategoryBonus struct {
	Percent decimal.Decimal `json:"percent"`
	Value   decimal.Decimal `json:"value"`
}

// BonusPart is the variable, performance-derived portion.
type BonusPart struct {
	DisciplineAward  decimal.Decimal `json:"discipline_award"`
	Bar              CategoryBonus   `json:"bar"`
	GameZone         CategoryBonus   `json:"game_zone"`
	VR               CategoryBonus   `json:"vr"`
	PublicationBonus decimal.Decimal `json:"publication_bonus"`
	CleaningBonus    decimal.Decimal `json:"cleaning_bonus"`
	HookahBonus      decimal.Decimal `json:"hookah_bonus"`
	Total            decimal.Decimal `json:"total"`
}

// Breakdown is the full per-shift earnings result for one employee.
// It is a view model: recomputed on demand, never persisted field by
// field, and bit-identical across calls for the same inputs.
type Breakdown struct {
	Basic BasicPart `json:"basic"`
	Bonus BonusPart `json:"bonus"`

	Penalty   decimal.Decimal `json:"penalty"`
	Retention decimal.Decimal `json:"retention"`

	Shortage     decimal.Decimal `json:"shortage"`
	ShortagePaid bool            `json:"shortage_paid"`

	// Estimated ignores the penalty entirely; BeforeShortage is the
	// total after penalty retention but before any shortage deduction.
	Estimated      decimal.Decimal `json:"estimated"`
	BeforeShortage decimal.Decimal `json:"before_shortage"`
	Final          decimal.Decimal `json:"final"`
}

// Zero returns an all-zero breakdown, the defined result for trainee
// placeholders and missing employee context.
func Zero() Breakdown {
	z := decimal.Zero
	zc := CategoryBonus{Percent: z, Value: z}
	return Breakdown{
		Basic: BasicPart{Salary: z, TenureBonus: z, AttestationBonus: z, Total: z},
		Bonus: BonusPart{
			DisciplineAward: z, Bar: zc, GameZone: zc, VR: zc,
			PublicationBonus: z, CleaningBonus: z, HookahBonus: z, Total: z,
		},
		Penalty: z, Retention: z,
		Shortage: z, ShortagePaid: false,
		Estimated: z, BeforeShortage: z, Final: z,
	}
}
