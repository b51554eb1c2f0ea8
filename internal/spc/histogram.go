package spc

import (
	"math"

	"spccli/pkg/contracts/domain"
)

// buildDistribution bins the raw measurement series into ceil(sqrt(n)) bins.
// The histogram range is anchored at min(min, lsl) so the lower specification
// limit is always inside the plotted range even when no data point reaches it.
//
// Bin width is (max-min)/binCount. A value equal to the series maximum always
// lands in the last bin; any other value whose floor-division index falls
// outside [0, binCount) is discarded.
func buildDistribution(measurements []float64, lsl, usl float64) domain.Distribution {
	n := len(measurements)
	if n == 0 {
		return domain.Distribution{Data: []domain.ChartPoint{}}
	}

	lo, hi := measurements[0], measurements[0]
	for _, v := range measurements[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	binCount := int(math.Ceil(math.Sqrt(float64(n))))
	if binCount < 1 {
		binCount = 1
	}
	binWidth := (hi - lo) / float64(binCount)

	binStart := lo
	if lsl < binStart {
		binStart = lsl
	}

	edges := make([]float64, binCount+1)
	for i := range edges {
		edges[i] = binStart + float64(i)*binWidth
	}

	counts := make([]int, binCount)
	for _, v := range measurements {
		if v == hi {
			// Top edge is half-open; the maximum belongs to the last bin.
			counts[binCount-1]++
			continue
		}
		if binWidth == 0 {
			// Degenerate single-point series.
			counts[0]++
			continue
		}
		idx := int(math.Floor((v - binStart) / binWidth))
		if idx < 0 || idx >= binCount {
			continue
		}
		counts[idx]++
	}

	data := make([]domain.ChartPoint, binCount)
	for i := 0; i < binCount; i++ {
		data[i] = domain.ChartPoint{
			X: edges[i] + binWidth/2,
			Y: float64(counts[i]),
		}
	}

	m, _ := mean(measurements)
	return domain.Distribution{
		Data: data,
		Stats: domain.DistributionStats{
			Mean:     m,
			Target:   (lsl + usl) / 2,
			BinEdges: edges,
			Min:      lo,
			Max:      hi,
		},
	}
}
