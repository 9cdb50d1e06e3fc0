// Package calc implements the load-suggestion calculator: rep-pattern and
// weight-list parsing, next-session progression, warm-up ramps, manual
// rep/weight schemes, and plate-loading breakdowns. All weights are
// kilograms. Every function is pure; malformed input degrades to an empty or
// zero result instead of returning an error.
package calc

import "math"

// RoundTo rounds value to the nearest multiple of step. NaN and infinite
// values round to 0. A non-positive step returns value unchanged.
func RoundTo(value, step float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}
