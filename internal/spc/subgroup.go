package spc

import "math"

// makeSubgroups partitions measurements into consecutive subgroups of
// sampleSize and returns the per-subgroup means and ranges.
//
// For sampleSize 1 each measurement is its own subgroup mean and the ranges
// are the moving ranges |x[i]-x[i-1]| (n-1 values for n measurements).
//
// Otherwise the final subgroup may be shorter when the series length does not
// divide evenly; it still contributes a mean, but a subgroup of a single
// element contributes no range value.
func makeSubgroups(measurements []float64, sampleSize int) (means, ranges []float64) {
	if sampleSize == 1 {
		means = make([]float64, len(measurements))
		copy(means, measurements)
		for i := 1; i < len(measurements); i++ {
			ranges = append(ranges, math.Abs(measurements[i]-measurements[i-1]))
		}
		return means, ranges
	}

	for start := 0; start < len(measurements); start += sampleSize {
		end := start + sampleSize
		if end > len(measurements) {
			end = len(measurements)
		}
		chunk := measurements[start:end]

		m, _ := mean(chunk)
		means = append(means, m)

		if len(chunk) >= 2 {
			lo, hi := chunk[0], chunk[0]
			for _, v := range chunk[1:] {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
			ranges = append(ranges, hi-lo)
		}
	}
	return means, ranges
}
