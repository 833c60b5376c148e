package payplan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestPlan() Plan {
	tiers := []Tier{
		{Threshold: decimal.Zero, Rate: decimal.NewFromFloat(0.005)},
		{Threshold: decimal.NewFromInt(3000), Rate: decimal.NewFromFloat(0.01)},
	}
	set := TierSet{Bar: tiers, GameZone: tiers, VR: tiers}
	return Plan{
		RequiredExperienceDays: 90,
		MinimalWorkshifts:      5,
		AdminTiers:             set,
		CashierTiers:           set,
	}
}

func TestPlanValidate_AcceptsWellFormedTables(t *testing.T) {
	t.Parallel()

	require.NoError(t, validTestPlan().Validate())
}

func TestPlanValidate_RejectsEmptyTable(t *testing.T) {
	t.Parallel()

	p := validTestPlan()
	p.CashierTiers.VR = nil

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table is empty")
}

func TestPlanValidate_RejectsMissingZeroThreshold(t *testing.T) {
	t.Parallel()

	p := validTestPlan()
	p.AdminTiers.Bar = []Tier{
		{Threshold: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.01)},
	}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first threshold must be zero")
}

func TestPlanValidate_RejectsNonIncreasingThresholds(t *testing.T) {
	t.Parallel()

	p := validTestPlan()
	p.AdminTiers.GameZone = []Tier{
		{Threshold: decimal.Zero, Rate: decimal.NewFromFloat(0.01)},
		{Threshold: decimal.NewFromInt(2000), Rate: decimal.NewFromFloat(0.02)},
		{Threshold: decimal.NewFromInt(2000), Rate: decimal.NewFromFloat(0.03)},
	}

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestPlanValidate_RejectsNegativeCounters(t *testing.T) {
	t.Parallel()

	p := validTestPlan()
	p.RequiredExperienceDays = -1
	require.Error(t, p.Validate())

	p = validTestPlan()
	p.MinimalWorkshifts = -1
	require.Error(t, p.Validate())
}
