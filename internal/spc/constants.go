package spc

// ShewhartConstants are the empirical control-chart factors for a given
// subgroup size: A2 scales the average range into X-bar limits, D3/D4 bound
// the Range chart, and d2 converts the average range into a within-subgroup
// standard deviation estimate.
type ShewhartConstants struct {
	A2 float64
	D3 float64
	D4 float64
	D2 float64
}

// shewhartTable maps subgroup size to its chart constants. Size 1 carries the
// individuals/moving-range factors; d2 for sizes 1 and 2 is identical because
// a moving range spans two observations.
var shewhartTable = map[int]ShewhartConstants{
	1: {A2: 2.660, D3: 0, D4: 3.267, D2: 1.128},
	2: {A2: 1.880, D3: 0, D4: 3.267, D2: 1.128},
	3: {A2: 1.023, D3: 0, D4: 2.574, D2: 1.693},
	4: {A2: 0.729, D3: 0, D4: 2.282, D2: 2.059},
	5: {A2: 0.577, D3: 0, D4: 2.114, D2: 2.326},
}

// ConstantsFor returns the Shewhart constants for the given subgroup size.
func ConstantsFor(sampleSize int) (ShewhartConstants, bool) {
	c, ok := shewhartTable[sampleSize]
	return c, ok
}

const (
	// DefaultSampleSize is the subgroup size used when the caller does not
	// specify one.
	DefaultSampleSize = 5

	// zeroStdDevEpsilon replaces a standard deviation that is exactly zero
	// before it is used as a divisor, so capability indices degrade to very
	// large finite numbers instead of infinities.
	zeroStdDevEpsilon = 1e-6

	// runSignalLength is the run length of same-side subgroup means that
	// signals a process shift.
	runSignalLength = 8

	// trendSignalLength is the length of a strictly monotonic run of
	// subgroup means that signals a trend.
	trendSignalLength = 6
)
