package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	month, year, err := ParsePeriod("5", "2025")
	require.NoError(t, err)
	assert.Equal(t, 5, month)
	assert.Equal(t, 2025, year)
}

func TestParsePeriodRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		month string
		year  string
	}{
		{name: "non-numeric month", month: "may", year: "2025"},
		{name: "month too small", month: "0", year: "2025"},
		{name: "month too large", month: "13", year: "2025"},
		{name: "non-numeric year", month: "5", year: "twenty"},
		{name: "negative year", month: "5", year: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParsePeriod(tt.month, tt.year)
			assert.Error(t, err)
		})
	}
}
