package utils

import "math"

// RoundTo rounds f to the given number of decimal digits.
func RoundTo(f float64, digits int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	shift := math.Pow(10, float64(digits))
	return math.Round(f*shift) / shift
}

// Quantile returns the p-quantile of an ascending-sorted slice using linear
// interpolation between adjacent order statistics: the quantile sits at
// position p*(n-1), interpolated between the two surrounding samples.
// Returns NaN on an empty slice.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	if lo < 0 {
		lo = 0
	}
	if lo > n-2 {
		lo = n - 2
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
