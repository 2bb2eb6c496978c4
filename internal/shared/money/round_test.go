package money_test

import (
	"math"
	"testing"

	"go-payroll/internal/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{8999.999999999999, 9000},
		{1079.9999999999998, 1080},
		{0.125, 0.13},
		{10, 10},
		{0, 0},
		{-1.234, -1.23},
		{33.333333333333336, 33.33},
		// rounds the shortest decimal form, not the binary expansion 8.3449...
		{8.345, 8.35},
		{2.675, 2.68},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, money.Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestRound2_Idempotent(t *testing.T) {
	for _, v := range []float64{0.1 + 0.2, 1.005, 123.455, 9999.994999, 15000.015, 1.0 / 3, 2.0 / 3 * 100} {
		once := money.Round2(v)
		assert.Equal(t, once, money.Round2(once), "value %v", v)
	}
}

func TestRound2_NonFinitePassesThrough(t *testing.T) {
	assert.True(t, math.IsNaN(money.Round2(math.NaN())))
	assert.True(t, math.IsInf(money.Round2(math.Inf(1)), 1))
	assert.False(t, money.AllFinite(1, math.NaN()))
	assert.True(t, money.AllFinite(1, 2.5))
}
