package utils

import "math"

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Round2 rounds a float to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp01 clamps a probability into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
