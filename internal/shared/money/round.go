// Package money holds the rounding rule shared by every payroll amount.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// epsilon nudges values such as 1.005 (stored as 1.00499...) over the
// half-way point before rounding.
const epsilon = 2.220446049250313e-16

var half = decimal.NewFromFloat(0.5)

// Round2 rounds half-up to two decimals, working on the shortest decimal
// form of v, so 8.345 becomes 8.35. Non-finite input is returned as is so
// callers can detect it with IsFinite.
func Round2(v float64) float64 {
	if !IsFinite(v) {
		return v
	}
	d := decimal.NewFromFloat(v + epsilon).Shift(2)
	return d.Add(half).Floor().Shift(-2).InexactFloat64()
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value is a real number.
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
