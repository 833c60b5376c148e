package shift

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusNotConfirmed, StatusUnverified, true},
		{StatusNotConfirmed, StatusVerified, false},
		{StatusNotConfirmed, StatusWaitCorrection, false},
		{StatusUnverified, StatusWaitCorrection, true},
		{StatusUnverified, StatusVerified, true},
		{StatusUnverified, StatusNotConfirmed, false},
		{StatusWaitCorrection, StatusUnverified, true},
		{StatusWaitCorrection, StatusVerified, false},
		{StatusVerified, StatusWaitCorrection, true},
		{StatusVerified, StatusUnverified, false},
		{StatusVerified, StatusNotConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestGameZoneNet_ClampsAtZero(t *testing.T) {
	t.Parallel()

	s := Shift{
		GameZoneGross: decimal.NewFromInt(500),
		GameZoneError: decimal.NewFromInt(800),
	}
	assert.True(t, s.GameZoneNet().IsZero())

	s.GameZoneError = decimal.NewFromInt(200)
	assert.True(t, s.GameZoneNet().Equal(decimal.NewFromInt(300)))
}

func TestSeatAccessors(t *testing.T) {
	t.Parallel()

	adminID := "emp-1"
	s := Shift{
		AdminID:        &adminID,
		CashierID:      nil,
		AdminPenalty:   decimal.NewFromInt(100),
		CashierPenalty: decimal.NewFromInt(50),
	}

	assert.Equal(t, &adminID, s.EmployeeID(PositionHallAdmin))
	assert.Nil(t, s.EmployeeID(PositionCashier))
	assert.True(t, s.PenaltyFor(PositionHallAdmin).Equal(decimal.NewFromInt(100)))
	assert.True(t, s.PenaltyFor(PositionCashier).Equal(decimal.NewFromInt(50)))
}
