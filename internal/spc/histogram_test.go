package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDistributionCountsSumToN(t *testing.T) {
	// With lsl inside the data range the histogram covers every value: the
	// counts must sum to the number of measurements.
	measurements := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dist := buildDistribution(measurements, 2, 10)

	require.Len(t, dist.Data, 3) // ceil(sqrt(9))
	total := 0.0
	for _, p := range dist.Data {
		total += p.Y
	}
	assert.InDelta(t, float64(len(measurements)), total, 1e-12)
}

func TestBuildDistributionMaxInLastBin(t *testing.T) {
	measurements := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	dist := buildDistribution(measurements, 1, 10)

	// 9 == max: always in the last bin, never overflowed out.
	last := dist.Data[len(dist.Data)-1]
	assert.Greater(t, last.Y, 0.0)
}

func TestBuildDistributionAnchoredAtLSL(t *testing.T) {
	// The range extends leftward to include the lower spec limit; bin width
	// is still (max-min)/binCount, so values above the covered span are
	// discarded except the series maximum.
	measurements := []float64{10, 12, 11, 13, 10, 12, 11, 13, 10, 12}
	dist := buildDistribution(measurements, 5, 15)

	require.Len(t, dist.Data, 4) // ceil(sqrt(10))
	require.Len(t, dist.Stats.BinEdges, 5)
	assert.InDelta(t, 5.0, dist.Stats.BinEdges[0], 1e-12)
	assert.InDelta(t, 0.75, dist.Stats.BinEdges[1]-dist.Stats.BinEdges[0], 1e-12)

	// Only the two measurements equal to the maximum land in a bin.
	counts := []float64{dist.Data[0].Y, dist.Data[1].Y, dist.Data[2].Y, dist.Data[3].Y}
	assert.Equal(t, []float64{0, 0, 0, 2}, counts)
}

func TestBuildDistributionDegenerateSeries(t *testing.T) {
	// Zero-width bins (all values identical) must not divide by zero; every
	// value maps into the histogram.
	dist := buildDistribution([]float64{4, 4, 4, 4}, 3, 5)

	require.Len(t, dist.Data, 2)
	total := 0.0
	for _, p := range dist.Data {
		total += p.Y
	}
	assert.InDelta(t, 4, total, 1e-12)
	assert.InDelta(t, 4, dist.Stats.Min, 1e-12)
	assert.InDelta(t, 4, dist.Stats.Max, 1e-12)
}

func TestBuildDistributionSinglePoint(t *testing.T) {
	dist := buildDistribution([]float64{7}, 6, 8)
	require.Len(t, dist.Data, 1)
	assert.InDelta(t, 1, dist.Data[0].Y, 1e-12)
	assert.InDelta(t, 7, dist.Stats.Target, 1e-12)
}

func TestBuildDistributionStats(t *testing.T) {
	dist := buildDistribution([]float64{2, 4, 6}, 1, 9)
	assert.InDelta(t, 4, dist.Stats.Mean, 1e-12)
	assert.InDelta(t, 5, dist.Stats.Target, 1e-12)
	assert.InDelta(t, 2, dist.Stats.Min, 1e-12)
	assert.InDelta(t, 6, dist.Stats.Max, 1e-12)
}
