package csr

import "math"

// Magnitude returns the non-negative norm of a scalar used by the strength
// measures; for real values this is the absolute value.
func Magnitude(x float64) float64 {
	return math.Abs(x)
}

// Signof returns -1, 0 or +1. Both sign-filter branches of the modified and
// extended interpolation kernels rely on Signof(0) == 0 so that an absent
// entry never matches the diagonal's sign.
func Signof(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
