package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNet(t *testing.T) {
	tests := []struct {
		gross float64
		net   float64
	}{
		{gross: 2000, net: 1600},
		{gross: 800, net: 640},
		{gross: 1, net: 0.8},
		{gross: 12345.67, net: 9876.536},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.net, ToNet(tt.gross), 1e-9)
	}
}

func TestToGross(t *testing.T) {
	assert.InDelta(t, 2000, ToGross(1600), 1e-9)
	assert.InDelta(t, 1000, ToGross(800), 1e-9)
}

func TestConversionRoundTrip(t *testing.T) {
	for _, gross := range []float64{0.01, 1, 3, 99.99, 2000, 123456.78, 1e9} {
		back := ToGross(ToNet(gross))
		relErr := math.Abs(back-gross) / gross
		assert.LessOrEqual(t, relErr, 1e-6, "gross %v came back as %v", gross, back)
	}
}
