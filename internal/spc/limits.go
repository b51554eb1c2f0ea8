package spc

import "spccli/pkg/contracts/domain"

// chartLimits holds the derived Shewhart centerlines and control limits in
// full precision, before they are packed into the result contract.
type chartLimits struct {
	GrandMean float64
	AvgRange  float64
	XBarUCL   float64
	XBarLCL   float64
	RangeUCL  float64
	RangeLCL  float64
}

// deriveLimits applies the Shewhart constants to the subgroup means and
// ranges. AvgRange is zero when no range values exist (a single measurement
// with sampleSize 1), which collapses both charts onto their centerlines.
func deriveLimits(means, ranges []float64, c ShewhartConstants) chartLimits {
	grandMean, _ := mean(means)
	avgRange, _ := mean(ranges)

	return chartLimits{
		GrandMean: grandMean,
		AvgRange:  avgRange,
		XBarUCL:   grandMean + c.A2*avgRange,
		XBarLCL:   grandMean - c.A2*avgRange,
		RangeUCL:  c.D4 * avgRange,
		RangeLCL:  c.D3 * avgRange,
	}
}

// chartSeries converts a value sequence into (index, value) chart points with
// a 1-based sequential index.
func chartSeries(values []float64) []domain.ChartPoint {
	points := make([]domain.ChartPoint, len(values))
	for i, v := range values {
		points[i] = domain.ChartPoint{X: float64(i + 1), Y: v}
	}
	return points
}
