// Package safemath guards ratio arithmetic against zero denominators and
// non-finite intermediate results. Every formula in the engine routes its
// divisions through SafeDivide so that arbitrary company data (negative
// equity, zero liabilities, zero shares outstanding) can never produce a
// value that is unrepresentable in a JSON number.
package safemath

import "math"

// Sentinel is the bounded stand-in for a ratio that is undefined or has
// overflowed. It is part of the output contract: consumers treat it as
// "effectively infinite".
const Sentinel = 999999.0

// SafeDivide divides numerator by denominator and always returns a finite
// number. A zero denominator yields Sentinel when the numerator is positive,
// otherwise the caller-supplied default. A non-finite quotient is clamped to
// ±Sentinel by sign.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		if numerator > 0 {
			return Sentinel
		}
		return def
	}
	result := numerator / denominator
	if math.IsInf(result, 0) || math.IsNaN(result) {
		if result > 0 {
			return Sentinel
		}
		return -Sentinel
	}
	return result
}

// JSONSafe clamps an already-computed value so it can be marshaled as a JSON
// number: ±Inf becomes ±Sentinel, NaN becomes 0.
func JSONSafe(v float64) float64 {
	if math.IsInf(v, 1) {
		return Sentinel
	}
	if math.IsInf(v, -1) {
		return -Sentinel
	}
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Round2 rounds to two decimal places, the precision of every numeric leaf
// in the report.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
