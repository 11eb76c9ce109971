package utils

import "math"

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampInt restricts n to [lo, hi].
func ClampInt(n, lo, hi int) int {
	return MinInt(MaxInt(n, lo), hi)
}

// ClampF64 restricts n to [lo, hi]. NaN is mapped to lo.
func ClampF64(n, lo, hi float64) float64 {
	if math.IsNaN(n) {
		return lo
	}
	return math.Min(math.Max(n, lo), hi)
}
