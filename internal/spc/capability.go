package spc

import "math"

// capabilityIndices holds the short-term (within) and long-term (overall)
// variation estimates and the capability/performance indices derived from
// them.
type capabilityIndices struct {
	WithinStdDev  float64
	OverallStdDev float64
	Cp, Cpu, Cpl, Cpk float64
	Pp, Ppu, Ppl, Ppk float64
}

// computeCapability derives the capability indices against the specification
// limits. WithinStdDev is the range-based short-term estimator avgRange/d2;
// OverallStdDev is the population standard deviation of the raw series around
// the grand mean (not around a recomputed flat mean).
//
// A standard deviation of exactly zero is replaced by a small positive
// epsilon before dividing, so a zero-variance series yields very large finite
// indices rather than infinities or NaNs.
func computeCapability(measurements []float64, limits chartLimits, c ShewhartConstants, lsl, usl float64) capabilityIndices {
	within := limits.AvgRange / c.D2
	overall, _ := stdDev(measurements, limits.GrandMean)

	within = guardZero(within)
	overall = guardZero(overall)

	ci := capabilityIndices{
		WithinStdDev:  within,
		OverallStdDev: overall,
	}

	ci.Cp = (usl - lsl) / (6 * within)
	ci.Cpu = (usl - limits.GrandMean) / (3 * within)
	ci.Cpl = (limits.GrandMean - lsl) / (3 * within)
	ci.Cpk = math.Min(ci.Cpu, ci.Cpl)

	ci.Pp = (usl - lsl) / (6 * overall)
	ci.Ppu = (usl - limits.GrandMean) / (3 * overall)
	ci.Ppl = (limits.GrandMean - lsl) / (3 * overall)
	ci.Ppk = math.Min(ci.Ppu, ci.Ppl)

	return ci
}

func guardZero(sd float64) float64 {
	if sd == 0 {
		return zeroStdDevEpsilon
	}
	return sd
}
