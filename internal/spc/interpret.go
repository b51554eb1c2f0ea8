package spc

import "spccli/pkg/contracts/domain"

// Capability thresholds for the rule tables. Evaluated in order, first match
// wins.
const (
	cpkExcellent      = 1.67
	cpkMoreCapable    = 1.45
	cpkCapable        = 1.33
	cpkSlightlyCap    = 1.0
	indexExcellent    = 1.33
	indexGood         = 1.0
	shiftRatio        = 0.75
	spreadThreshold   = 1.0
	specialCauseRatio = 0.75
)

// interpret maps the computed indices and pattern signals to the qualitative
// verdicts consumed by dashboards.
func interpret(ci capabilityIndices, signals patternSignals) domain.ProcessInterpretation {
	pi := domain.ProcessInterpretation{
		DecisionRemark:     decisionRemark(ci.Cpk),
		ProcessPotential:   indexTier(ci.Cp),
		ProcessPerformance: indexTier(ci.Cpk),
	}

	if signals.PointsOutside == 0 && !signals.HasEightConsecutive {
		pi.ProcessStability = domain.LabelStable
	} else {
		pi.ProcessStability = domain.LabelUnstable
	}

	if signals.HasEightConsecutive {
		pi.ProcessShift = domain.LabelPresent
	} else {
		pi.ProcessShift = domain.LabelNotDetected
	}

	return pi
}

func decisionRemark(cpk float64) string {
	switch {
	case cpk >= cpkExcellent:
		return "Excellent"
	case cpk >= cpkMoreCapable:
		return "more capable, scope to improve"
	case cpk >= cpkCapable:
		return "capable, scope to improve"
	case cpk >= cpkSlightlyCap:
		return "slightly capable, 100% inspection"
	default:
		return "stop process, redesign"
	}
}

func indexTier(index float64) string {
	switch {
	case index >= indexExcellent:
		return "Excellent"
	case index >= indexGood:
		return "Good"
	default:
		return "Poor"
	}
}

// specialCause builds the flag-style special-cause block. When Pp >= Cp the
// within-variation estimate exceeds the overall one, which breaks the
// assumptions behind the Pp/Cp comparison; detection is reported as
// impossible rather than silently reinterpreted.
func specialCause(ci capabilityIndices, signals patternSignals) domain.SpecialCauseAnalysis {
	sc := domain.SpecialCauseAnalysis{
		PointsOutsideLimits:      signals.PointsOutside,
		RangePointsOutsideLimits: signals.RangePointsOutside,
		EightConsecutivePoints:   yesNo(signals.HasEightConsecutive),
		SixConsecutiveTrend:      yesNo(signals.HasSixTrend),
	}

	sc.ProcessShift = yesNo(ci.Cpk < shiftRatio*ci.Cp)
	sc.ProcessSpread = yesNo(ci.Cp < spreadThreshold)

	switch {
	case ci.Pp >= ci.Cp:
		sc.SpecialCausePresent = domain.LabelDetectionImpossible
	case ci.Pp < specialCauseRatio*ci.Cp:
		sc.SpecialCausePresent = domain.LabelYes
	default:
		sc.SpecialCausePresent = domain.LabelNo
	}

	return sc
}

func yesNo(b bool) string {
	if b {
		return domain.LabelYes
	}
	return domain.LabelNo
}
