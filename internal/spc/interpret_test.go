package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spccli/pkg/contracts/domain"
)

func TestDecisionRemark(t *testing.T) {
	tests := []struct {
		cpk      float64
		expected string
	}{
		{1.80, "Excellent"},
		{1.67, "Excellent"},
		{1.50, "more capable, scope to improve"},
		{1.45, "more capable, scope to improve"},
		{1.40, "capable, scope to improve"},
		{1.33, "capable, scope to improve"},
		{1.10, "slightly capable, 100% inspection"},
		{1.00, "slightly capable, 100% inspection"},
		{0.90, "stop process, redesign"},
		{-0.50, "stop process, redesign"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, decisionRemark(tt.cpk), "cpk=%v", tt.cpk)
	}
}

func TestIndexTier(t *testing.T) {
	assert.Equal(t, "Excellent", indexTier(1.33))
	assert.Equal(t, "Good", indexTier(1.2))
	assert.Equal(t, "Good", indexTier(1.0))
	assert.Equal(t, "Poor", indexTier(0.99))
}

func TestInterpretStabilityAndShift(t *testing.T) {
	ci := capabilityIndices{Cp: 1.5, Cpk: 1.4}

	pi := interpret(ci, patternSignals{})
	assert.Equal(t, domain.LabelStable, pi.ProcessStability)
	assert.Equal(t, domain.LabelNotDetected, pi.ProcessShift)

	pi = interpret(ci, patternSignals{PointsOutside: 1})
	assert.Equal(t, domain.LabelUnstable, pi.ProcessStability)

	pi = interpret(ci, patternSignals{HasEightConsecutive: true})
	assert.Equal(t, domain.LabelUnstable, pi.ProcessStability)
	assert.Equal(t, domain.LabelPresent, pi.ProcessShift)
}

func TestSpecialCause(t *testing.T) {
	signals := patternSignals{PointsOutside: 2, RangePointsOutside: 1, HasSixTrend: true}

	// Pp >= Cp: within-variation estimate exceeds overall, detection is
	// reported impossible.
	sc := specialCause(capabilityIndices{Cp: 1.0, Pp: 1.2, Cpk: 0.9}, signals)
	assert.Equal(t, domain.LabelDetectionImpossible, sc.SpecialCausePresent)
	assert.Equal(t, 2, sc.PointsOutsideLimits)
	assert.Equal(t, 1, sc.RangePointsOutsideLimits)
	assert.Equal(t, domain.LabelYes, sc.SixConsecutiveTrend)
	assert.Equal(t, domain.LabelNo, sc.EightConsecutivePoints)

	// Pp < 0.75*Cp: special cause present.
	sc = specialCause(capabilityIndices{Cp: 2.0, Pp: 1.0}, patternSignals{})
	assert.Equal(t, domain.LabelYes, sc.SpecialCausePresent)

	// 0.75*Cp <= Pp < Cp: no special cause.
	sc = specialCause(capabilityIndices{Cp: 2.0, Pp: 1.8}, patternSignals{})
	assert.Equal(t, domain.LabelNo, sc.SpecialCausePresent)
}

func TestSpecialCauseShiftAndSpread(t *testing.T) {
	sc := specialCause(capabilityIndices{Cp: 2.0, Cpk: 1.4, Pp: 1.8}, patternSignals{})
	assert.Equal(t, domain.LabelYes, sc.ProcessShift) // 1.4 < 0.75*2.0
	assert.Equal(t, domain.LabelNo, sc.ProcessSpread)

	sc = specialCause(capabilityIndices{Cp: 0.9, Cpk: 0.85, Pp: 0.8}, patternSignals{})
	assert.Equal(t, domain.LabelNo, sc.ProcessShift) // 0.85 >= 0.675
	assert.Equal(t, domain.LabelYes, sc.ProcessSpread)
}
