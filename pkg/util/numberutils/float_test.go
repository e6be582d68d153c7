package numberutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorToInt(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"positive fraction", 15.7, 15},
		{"exact integer", 20, 20},
		{"negative fraction floors down", -5.2, -6},
		{"just below zero", -0.1, -1},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), math.MaxInt},
		{"negative infinity", math.Inf(-1), math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FloorToInt(tt.value))
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 10.8, RoundTo(3*3.6, 1), 1e-9)
	assert.InDelta(t, 12.6, RoundTo(3.5*3.6, 1), 1e-9)
	assert.InDelta(t, 2.3, RoundTo(2.25, 1), 1e-9)
	assert.InDelta(t, 4, RoundTo(3.6, 0), 1e-9)
	assert.InDelta(t, 4, RoundTo(3.6, -2), 1e-9)
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 2, MinInt(5, 2, 9))
	assert.Equal(t, 0, MinInt())
	assert.True(t, IsFloat64InRange(-90, -90, 90))
	assert.False(t, IsFloat64InRange(90.5, -90, 90))
}
