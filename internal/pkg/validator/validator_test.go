package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"manager@club.local", "a.b-c+tag@example.co"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "@example.com", "user@", "user@host"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-06-15")
	assert.True(t, ok)

	for _, s := range []string{"", "15-06-2024", "2024/06/15", "2024-13-01"} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, s)
	}
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "date", Message: "is required"},
		{Field: "amount", Message: "must not be negative"},
	}

	assert.Equal(t, "date: is required; amount: must not be negative", errs.Error())
	assert.Equal(t, map[string]string{
		"date":   "is required",
		"amount": "must not be negative",
	}, errs.ToMap())
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}
