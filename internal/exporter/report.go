package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spccli/pkg/contracts/domain"
)

// Rounded returns a copy of the result with every float field rounded to
// report precision. The input is not modified.
func Rounded(result *domain.AnalysisResult) *domain.AnalysisResult {
	if result == nil {
		return nil
	}

	out := *result

	m := &out.Metrics
	for _, f := range []*float64{
		&m.XBar, &m.StdDevOverall, &m.StdDevWithin, &m.AvgRange,
		&m.Cp, &m.Cpu, &m.Cpl, &m.Cpk,
		&m.Pp, &m.Ppu, &m.Ppl, &m.Ppk,
		&m.LSL, &m.USL, &m.Target,
	} {
		*f = roundTo(*f, reportPrecision)
	}

	l := &out.ControlCharts.Limits
	for _, f := range []*float64{
		&l.XBarUCL, &l.XBarMean, &l.XBarLCL,
		&l.RangeUCL, &l.RangeMean, &l.RangeLCL,
		&l.MeanDeviationRatio,
	} {
		*f = roundTo(*f, reportPrecision)
	}

	out.ControlCharts.XBarData = roundPoints(result.ControlCharts.XBarData)
	out.ControlCharts.RangeData = roundPoints(result.ControlCharts.RangeData)
	out.Distribution.Data = roundPoints(result.Distribution.Data)

	s := &out.Distribution.Stats
	s.Mean = roundTo(s.Mean, reportPrecision)
	s.Target = roundTo(s.Target, reportPrecision)
	s.Min = roundTo(s.Min, reportPrecision)
	s.Max = roundTo(s.Max, reportPrecision)
	s.BinEdges = make([]float64, len(result.Distribution.Stats.BinEdges))
	for i, e := range result.Distribution.Stats.BinEdges {
		s.BinEdges[i] = roundTo(e, reportPrecision)
	}

	return &out
}

func roundPoints(points []domain.ChartPoint) []domain.ChartPoint {
	if points == nil {
		return nil
	}
	out := make([]domain.ChartPoint, len(points))
	for i, p := range points {
		out[i] = domain.ChartPoint{
			X: roundTo(p.X, reportPrecision),
			Y: roundTo(p.Y, reportPrecision),
		}
	}
	return out
}

// WriteReportJSON writes the rounded analysis result as indented JSON.
func WriteReportJSON(path string, result *domain.AnalysisResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(Rounded(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("JSON report written",
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return nil
}

// WriteReportCSV writes the scalar summary of the analysis as a two-column
// CSV in the writer's reports directory.
func WriteReportCSV(w *CSVWriter, filePath string, result *domain.AnalysisResult) error {
	r := Rounded(result)
	m := r.Metrics
	limits := r.ControlCharts.Limits

	records := [][]string{
		{"x_bar", formatFloat(m.XBar)},
		{"std_dev_overall", formatFloat(m.StdDevOverall)},
		{"std_dev_within", formatFloat(m.StdDevWithin)},
		{"avg_range", formatFloat(m.AvgRange)},
		{"cp", formatFloat(m.Cp)},
		{"cpu", formatFloat(m.Cpu)},
		{"cpl", formatFloat(m.Cpl)},
		{"cpk", formatFloat(m.Cpk)},
		{"pp", formatFloat(m.Pp)},
		{"ppu", formatFloat(m.Ppu)},
		{"ppl", formatFloat(m.Ppl)},
		{"ppk", formatFloat(m.Ppk)},
		{"lsl", formatFloat(m.LSL)},
		{"usl", formatFloat(m.USL)},
		{"target", formatFloat(m.Target)},
		{"x_bar_ucl", formatFloat(limits.XBarUCL)},
		{"x_bar_mean", formatFloat(limits.XBarMean)},
		{"x_bar_lcl", formatFloat(limits.XBarLCL)},
		{"range_ucl", formatFloat(limits.RangeUCL)},
		{"range_mean", formatFloat(limits.RangeMean)},
		{"range_lcl", formatFloat(limits.RangeLCL)},
		{"mean_deviation_ratio", formatFloat(limits.MeanDeviationRatio)},
		{"points_outside_limits", formatInt(r.SSAnalysis.PointsOutsideLimits)},
		{"range_points_outside_limits", formatInt(r.SSAnalysis.RangePointsOutsideLimits)},
		{"process_shift", r.SSAnalysis.ProcessShift},
		{"process_spread", r.SSAnalysis.ProcessSpread},
		{"special_cause_present", r.SSAnalysis.SpecialCausePresent},
		{"eight_consecutive_points", r.SSAnalysis.EightConsecutivePoints},
		{"six_consecutive_trend", r.SSAnalysis.SixConsecutiveTrend},
		{"decision_remark", r.ProcessInterpretation.DecisionRemark},
		{"process_potential", r.ProcessInterpretation.ProcessPotential},
		{"process_performance", r.ProcessInterpretation.ProcessPerformance},
		{"process_stability", r.ProcessInterpretation.ProcessStability},
		{"interpreted_process_shift", r.ProcessInterpretation.ProcessShift},
		{"total_records", formatInt(r.DataQuality.TotalRecords)},
		{"valid_records", formatInt(r.DataQuality.ValidRecords)},
		{"dropped_records", formatInt(r.DataQuality.DroppedRecords)},
	}

	return w.WriteSimpleCSV(filePath, []string{"metric", "value"}, records)
}
