package spc

// patternSignals holds the raw findings of the runs/trend scan over the
// subgroup-mean series.
type patternSignals struct {
	MaxRunLength        int
	MaxTrendUp          int
	MaxTrendDown        int
	HasEightConsecutive bool
	HasSixTrend         bool
	PointsOutside       int
	RangePointsOutside  int
}

// detectPatterns scans the subgroup means for same-side runs relative to the
// grand mean and for strictly monotonic trends, and counts points outside the
// chart limits.
//
// A point exactly on the grand mean is neither above nor below and breaks any
// run. An equal consecutive pair resets both trend counters to 1.
func detectPatterns(means, ranges []float64, limits chartLimits) patternSignals {
	var s patternSignals

	// Same-side runs.
	run := 0
	side := 0 // -1 below, +1 above, 0 at the mean
	for _, m := range means {
		cur := 0
		switch {
		case m > limits.GrandMean:
			cur = 1
		case m < limits.GrandMean:
			cur = -1
		}
		if cur != 0 && cur == side {
			run++
		} else if cur != 0 {
			run = 1
		} else {
			run = 0
		}
		side = cur
		if run > s.MaxRunLength {
			s.MaxRunLength = run
		}
	}
	s.HasEightConsecutive = s.MaxRunLength >= runSignalLength

	// Monotonic trends.
	up, down := 1, 1
	for i := 1; i < len(means); i++ {
		switch {
		case means[i] > means[i-1]:
			up++
			down = 1
		case means[i] < means[i-1]:
			down++
			up = 1
		default:
			up = 1
			down = 1
		}
		if up > s.MaxTrendUp {
			s.MaxTrendUp = up
		}
		if down > s.MaxTrendDown {
			s.MaxTrendDown = down
		}
	}
	if len(means) < 2 {
		s.MaxTrendUp = 0
		s.MaxTrendDown = 0
	}
	s.HasSixTrend = s.MaxTrendUp >= trendSignalLength || s.MaxTrendDown >= trendSignalLength

	for _, m := range means {
		if m > limits.XBarUCL || m < limits.XBarLCL {
			s.PointsOutside++
		}
	}
	for _, r := range ranges {
		if r > limits.RangeUCL || r < limits.RangeLCL {
			s.RangePointsOutside++
		}
	}

	return s
}
