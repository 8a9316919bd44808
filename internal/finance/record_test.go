package finance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveDeliveryFromGross(t *testing.T) {
	date := time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)

	derived, err := DeriveDelivery(2000, true, date)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, derived.Gross)
	assert.Equal(t, 1600.0, derived.Net)
	assert.Equal(t, 5, derived.Month)
	assert.Equal(t, 2025, derived.Year)
}

func TestDeriveDeliveryFromNet(t *testing.T) {
	date := time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)

	derived, err := DeriveDelivery(1600, false, date)
	require.NoError(t, err)

	assert.InDelta(t, 2000.0, derived.Gross, 1e-9)
	assert.Equal(t, 1600.0, derived.Net)
	assert.Equal(t, 5, derived.Month)
	assert.Equal(t, 2025, derived.Year)
}

func TestDeriveDeliveryPeriodIgnoresAmountKind(t *testing.T) {
	date := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	for _, isGross := range []bool{true, false} {
		derived, err := DeriveDelivery(500, isGross, date)
		require.NoError(t, err)
		assert.Equal(t, 12, derived.Month)
		assert.Equal(t, 2024, derived.Year)
	}
}

func TestDeriveDeliveryRejectsBadAmounts(t *testing.T) {
	date := time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		amount float64
	}{
		{name: "zero", amount: 0},
		{name: "negative", amount: -5},
		{name: "nan", amount: math.NaN()},
		{name: "positive infinity", amount: math.Inf(1)},
		{name: "negative infinity", amount: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveDelivery(tt.amount, true, date)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestDeriveDeliveryRejectsZeroDate(t *testing.T) {
	_, err := DeriveDelivery(100, true, time.Time{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCanModify(t *testing.T) {
	owner := uint(7)

	assert.True(t, CanModify(Caller{ID: 7}, owner), "owner can modify")
	assert.True(t, CanModify(Caller{ID: 1, Admin: true}, owner), "admin can modify")
	assert.False(t, CanModify(Caller{ID: 8}, owner), "other users cannot")
}

func TestValidPhase(t *testing.T) {
	for _, p := range Phases {
		assert.True(t, ValidPhase(p), p)
	}

	assert.False(t, ValidPhase("Testing"))
	assert.False(t, ValidPhase(""))
	assert.False(t, ValidPhase("backend"))
}

func TestValidateTarget(t *testing.T) {
	assert.NoError(t, ValidateTarget(6, 2025, 3000))
	assert.NoError(t, ValidateTarget(1, 2025, 0))

	assert.ErrorIs(t, ValidateTarget(0, 2025, 100), ErrValidation)
	assert.ErrorIs(t, ValidateTarget(13, 2025, 100), ErrValidation)
	assert.ErrorIs(t, ValidateTarget(6, 0, 100), ErrValidation)
	assert.ErrorIs(t, ValidateTarget(6, 2025, -100), ErrValidation)
	assert.ErrorIs(t, ValidateTarget(6, 2025, math.NaN()), ErrValidation)
}
