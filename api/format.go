package api

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Display helpers for the presentation layer. They accept whatever the
// renderer hands them and never fail: non-numeric input and division by
// zero both yield 0.

// SafeDiv divides value by arg, returning 0 on non-numeric input or
// division by zero
func SafeDiv(value, arg any) float64 {
	v, okV := toFloat(value)
	a, okA := toFloat(arg)
	if !okV || !okA || a == 0 {
		return 0
	}
	return v / a
}

// SafeMul multiplies value by arg, returning 0 on non-numeric input
func SafeMul(value, arg any) float64 {
	v, okV := toFloat(value)
	a, okA := toFloat(arg)
	if !okV || !okA {
		return 0
	}
	return v * a
}

// Percentage computes value/total as a percentage, returning 0 when the
// total is 0 or either input is non-numeric
func Percentage(value, total any) float64 {
	v, okV := toFloat(value)
	t, okT := toFloat(total)
	if !okV || !okT || t == 0 {
		return 0
	}
	return v / t * 100
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case nil:
		return 0, false
	}
	return 0, false
}
