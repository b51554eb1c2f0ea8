package spc

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"spccli/pkg/contracts/domain"
)

// Analyzer runs SPC analyses over inspection-record series. It holds no
// mutable state between calls; a single Analyzer may serve concurrent
// requests.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer with the given logger.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze computes the full SPC analysis for the given records and subgroup
// size. Records whose specification fields do not all parse to finite
// numbers are dropped; lower and upper specification limits are taken from
// the first valid record and assumed constant for the whole series.
func (a *Analyzer) Analyze(ctx context.Context, records []domain.InspectionRecord, sampleSize int) (*domain.AnalysisResult, error) {
	if sampleSize == 0 {
		sampleSize = DefaultSampleSize
	}

	constants, ok := ConstantsFor(sampleSize)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, sampleSize)
	}

	measurements, lsl, usl := extractMeasurements(records)
	if len(measurements) < sampleSize {
		return nil, fmt.Errorf("%w: %d valid of %d records, need at least %d",
			ErrInsufficientData, len(measurements), len(records), sampleSize)
	}

	a.logger.DebugContext(ctx, "starting SPC analysis",
		slog.Int("records", len(records)),
		slog.Int("valid_measurements", len(measurements)),
		slog.Int("sample_size", sampleSize),
		slog.Float64("lsl", lsl),
		slog.Float64("usl", usl),
	)

	means, ranges := makeSubgroups(measurements, sampleSize)
	limits := deriveLimits(means, ranges, constants)
	capability := computeCapability(measurements, limits, constants, lsl, usl)
	distribution := buildDistribution(measurements, lsl, usl)
	signals := detectPatterns(means, ranges, limits)

	result := &domain.AnalysisResult{
		Metrics: domain.ProcessMetrics{
			XBar:          limits.GrandMean,
			StdDevOverall: capability.OverallStdDev,
			StdDevWithin:  capability.WithinStdDev,
			AvgRange:      limits.AvgRange,
			Cp:            capability.Cp,
			Cpu:           capability.Cpu,
			Cpl:           capability.Cpl,
			Cpk:           capability.Cpk,
			Pp:            capability.Pp,
			Ppu:           capability.Ppu,
			Ppl:           capability.Ppl,
			Ppk:           capability.Ppk,
			LSL:           lsl,
			USL:           usl,
			Target:        (lsl + usl) / 2,
		},
		ControlCharts: domain.ControlCharts{
			XBarData:  chartSeries(means),
			RangeData: chartSeries(ranges),
			Limits: domain.ControlLimits{
				XBarUCL:            limits.XBarUCL,
				XBarMean:           limits.GrandMean,
				XBarLCL:            limits.XBarLCL,
				RangeUCL:           limits.RangeUCL,
				RangeMean:          limits.AvgRange,
				RangeLCL:           limits.RangeLCL,
				MeanDeviationRatio: meanDeviationRatio(limits.GrandMean, distribution.Stats.Mean, capability.OverallStdDev),
			},
		},
		Distribution:          distribution,
		SSAnalysis:            specialCause(capability, signals),
		ProcessInterpretation: interpret(capability, signals),
		DataQuality: domain.DataQuality{
			TotalRecords:   len(records),
			ValidRecords:   len(measurements),
			DroppedRecords: len(records) - len(measurements),
		},
	}

	if result.DataQuality.DroppedRecords > 0 {
		a.logger.WarnContext(ctx, "dropped malformed inspection records",
			slog.Int("dropped", result.DataQuality.DroppedRecords),
			slog.Int("total", result.DataQuality.TotalRecords),
		)
	}

	return result, nil
}

// extractMeasurements parses the retained records into the measurement series
// (order-preserving) and takes the specification limits from the first valid
// record.
func extractMeasurements(records []domain.InspectionRecord) (measurements []float64, lsl, usl float64) {
	first := true
	for _, r := range records {
		actual, from, to, ok := r.Values()
		if !ok {
			continue
		}
		measurements = append(measurements, actual)
		if first {
			lsl, usl = from, to
			first = false
		}
	}
	return measurements, lsl, usl
}

func meanDeviationRatio(grandMean, distributionMean, overallStdDev float64) float64 {
	if overallStdDev == 0 {
		return 0
	}
	return math.Abs(grandMean-distributionMean) / overallStdDev
}
