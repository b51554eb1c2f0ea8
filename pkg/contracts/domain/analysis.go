package domain

// ChartPoint is a single (x, y) pair in a chart series. For control charts x
// is the 1-based subgroup index; for the distribution it is the bin center.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProcessMetrics is the scalar summary of an SPC analysis. All values are
// full-precision; rounding happens at the presentation boundary.
type ProcessMetrics struct {
	XBar          float64 `json:"x_bar"`
	StdDevOverall float64 `json:"std_dev_overall"`
	StdDevWithin  float64 `json:"std_dev_within"`
	AvgRange      float64 `json:"avg_range"`
	Cp            float64 `json:"cp"`
	Cpu           float64 `json:"cpu"`
	Cpl           float64 `json:"cpl"`
	Cpk           float64 `json:"cpk"`
	Pp            float64 `json:"pp"`
	Ppu           float64 `json:"ppu"`
	Ppl           float64 `json:"ppl"`
	Ppk           float64 `json:"ppk"`
	LSL           float64 `json:"lsl"`
	USL           float64 `json:"usl"`
	Target        float64 `json:"target"`
}

// ControlLimits holds the Shewhart chart centerlines and control limits.
type ControlLimits struct {
	XBarUCL            float64 `json:"x_bar_ucl"`
	XBarMean           float64 `json:"x_bar_mean"`
	XBarLCL            float64 `json:"x_bar_lcl"`
	RangeUCL           float64 `json:"range_ucl"`
	RangeMean          float64 `json:"range_mean"`
	RangeLCL           float64 `json:"range_lcl"`
	MeanDeviationRatio float64 `json:"mean_deviation_ratio"`
}

// ControlCharts holds the X-bar and Range chart point series plus limits.
type ControlCharts struct {
	XBarData  []ChartPoint  `json:"x_bar_data"`
	RangeData []ChartPoint  `json:"range_data"`
	Limits    ControlLimits `json:"limits"`
}

// DistributionStats summarizes the histogram of raw measurements.
type DistributionStats struct {
	Mean     float64   `json:"mean"`
	Target   float64   `json:"target"`
	BinEdges []float64 `json:"bin_edges"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
}

// Distribution is the binned histogram of raw measurements.
type Distribution struct {
	Data  []ChartPoint      `json:"data"`
	Stats DistributionStats `json:"stats"`
}

// Qualitative labels used by the special-cause analysis and interpretation
// blocks. Label sets are small fixed vocabularies consumed by dashboards.
const (
	LabelYes                 = "Yes"
	LabelNo                  = "No"
	LabelDetectionImpossible = "Detection Impossible"
	LabelPresent             = "Present"
	LabelNotDetected         = "Not Detected"
	LabelStable              = "Stable"
	LabelUnstable            = "Unstable"
)

// SpecialCauseAnalysis holds flag-style findings about non-random patterns.
type SpecialCauseAnalysis struct {
	ProcessShift             string `json:"process_shift"`
	ProcessSpread            string `json:"process_spread"`
	SpecialCausePresent      string `json:"special_cause_present"`
	PointsOutsideLimits      int    `json:"points_outside_limits"`
	RangePointsOutsideLimits int    `json:"range_points_outside_limits"`
	EightConsecutivePoints   string `json:"eight_consecutive_points"`
	SixConsecutiveTrend      string `json:"six_consecutive_trend"`
}

// ProcessInterpretation holds the rule-based qualitative verdicts.
type ProcessInterpretation struct {
	DecisionRemark     string `json:"decision_remark"`
	ProcessPotential   string `json:"process_potential"`
	ProcessPerformance string `json:"process_performance"`
	ProcessStability   string `json:"process_stability"`
	ProcessShift       string `json:"process_shift"`
}

// DataQuality reports how many input records survived validation. Malformed
// records are dropped silently during extraction; this block keeps that
// information visible to callers.
type DataQuality struct {
	TotalRecords   int `json:"total_records"`
	ValidRecords   int `json:"valid_records"`
	DroppedRecords int `json:"dropped_records"`
}

// AnalysisResult is the complete output of one SPC analysis pass. It is
// created fresh per invocation; no state is shared between calls.
type AnalysisResult struct {
	Metrics               ProcessMetrics        `json:"metrics"`
	ControlCharts         ControlCharts         `json:"control_charts"`
	Distribution          Distribution          `json:"distribution"`
	SSAnalysis            SpecialCauseAnalysis  `json:"ss_analysis"`
	ProcessInterpretation ProcessInterpretation `json:"process_interpretation"`
	DataQuality           DataQuality           `json:"data_quality"`
}
