package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSubgroupsEvenPartition(t *testing.T) {
	// n = k*sampleSize: exactly k means and k ranges.
	measurements := []float64{10, 12, 11, 13, 10, 12, 11, 13, 10, 12}
	means, ranges := makeSubgroups(measurements, 5)

	require.Len(t, means, 2)
	require.Len(t, ranges, 2)
	assert.InDelta(t, 11.2, means[0], 1e-12)
	assert.InDelta(t, 11.6, means[1], 1e-12)
	assert.InDelta(t, 3.0, ranges[0], 1e-12)
	assert.InDelta(t, 3.0, ranges[1], 1e-12)
}

func TestMakeSubgroupsRemainder(t *testing.T) {
	// 7 measurements with sampleSize 3: the trailing single-element chunk
	// contributes a mean but no range.
	measurements := []float64{1, 2, 3, 4, 5, 6, 7}
	means, ranges := makeSubgroups(measurements, 3)

	require.Len(t, means, 3)
	require.Len(t, ranges, 2)
	assert.InDelta(t, 2, means[0], 1e-12)
	assert.InDelta(t, 5, means[1], 1e-12)
	assert.InDelta(t, 7, means[2], 1e-12)
	assert.InDelta(t, 2, ranges[0], 1e-12)
	assert.InDelta(t, 2, ranges[1], 1e-12)
}

func TestMakeSubgroupsShortFinalChunk(t *testing.T) {
	// A two-element trailing chunk still yields a range.
	means, ranges := makeSubgroups([]float64{1, 2, 3, 9, 4}, 3)
	require.Len(t, means, 2)
	require.Len(t, ranges, 2)
	assert.InDelta(t, 6.5, means[1], 1e-12)
	assert.InDelta(t, 5, ranges[1], 1e-12)
}

func TestMakeSubgroupsMovingRange(t *testing.T) {
	// sampleSize 1: identity means, n-1 absolute moving ranges.
	means, ranges := makeSubgroups([]float64{5, 7, 6}, 1)

	assert.Equal(t, []float64{5, 7, 6}, means)
	require.Len(t, ranges, 2)
	assert.InDelta(t, 2, ranges[0], 1e-12)
	assert.InDelta(t, 1, ranges[1], 1e-12)
}

func TestMakeSubgroupsMovingRangeSinglePoint(t *testing.T) {
	means, ranges := makeSubgroups([]float64{4.2}, 1)
	assert.Equal(t, []float64{4.2}, means)
	assert.Empty(t, ranges)
}

func TestMovingRangesNonNegative(t *testing.T) {
	_, ranges := makeSubgroups([]float64{3, 1, 4, 1, 5, 9, 2, 6}, 1)
	require.Len(t, ranges, 7)
	for i, r := range ranges {
		assert.GreaterOrEqual(t, r, 0.0, "moving range %d", i)
	}
}
