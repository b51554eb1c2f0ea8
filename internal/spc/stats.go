package spc

import "math"

// mean returns the arithmetic mean over the finite values in xs. The second
// return is false when no finite values exist.
func mean(xs []float64) (float64, bool) {
	sum := 0.0
	count := 0
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		sum += x
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// stdDev returns the population standard deviation of xs around center
// (divide by N, no Bessel correction). Non-finite squared-deviation terms are
// skipped. The second return is false when no terms remain.
func stdDev(xs []float64, center float64) (float64, bool) {
	sum := 0.0
	count := 0
	for _, x := range xs {
		d := (x - center) * (x - center)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		sum += d
		count++
	}
	if count == 0 {
		return 0, false
	}
	return math.Sqrt(sum / float64(count)), true
}
