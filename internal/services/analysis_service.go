package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"spccli/internal/dataprocessing"
	"spccli/internal/exporter"
	"spccli/internal/infrastructure"
	"spccli/internal/spc"
	"spccli/pkg/contracts/domain"
)

// AnalysisService runs SPC analyses over inspection records, whether they
// arrive in an API payload or in files on disk.
type AnalysisService struct {
	analyzer          *spc.Analyzer
	defaultSampleSize int
	logger            *slog.Logger
}

// FileReport pairs an input file with its analysis result.
type FileReport struct {
	Path   string                 `json:"path"`
	Name   string                 `json:"name"`
	Result *domain.AnalysisResult `json:"result"`
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(defaultSampleSize int, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultSampleSize == 0 {
		defaultSampleSize = spc.DefaultSampleSize
	}

	return &AnalysisService{
		analyzer:          spc.NewAnalyzer(logger),
		defaultSampleSize: defaultSampleSize,
		logger:            infrastructure.WithComponent(logger, "analysis_service"),
	}
}

// AnalyzeRecords runs the analysis over in-memory records. A zero sampleSize
// selects the configured default.
func (s *AnalysisService) AnalyzeRecords(ctx context.Context, records []domain.InspectionRecord, sampleSize int) (*domain.AnalysisResult, error) {
	if sampleSize == 0 {
		sampleSize = s.defaultSampleSize
	}

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, records, sampleSize)
	if err != nil {
		infrastructure.WithError(s.logger, err).ErrorContext(ctx, "analysis failed",
			slog.Int("records", len(records)),
			slog.Int("sample_size", sampleSize))
		return nil, err
	}

	s.logger.InfoContext(ctx, "analysis completed",
		slog.Int("records", len(records)),
		slog.Int("sample_size", sampleSize),
		slog.Int("dropped_records", result.DataQuality.DroppedRecords),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// AnalyzeFile parses a single inspection file and analyzes its records.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string, sampleSize int) (*domain.AnalysisResult, error) {
	records, err := dataprocessing.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return s.AnalyzeRecords(ctx, records, sampleSize)
}

// AnalyzeInput discovers inspection files under inputPath (a file or a
// directory), parses them concurrently, and analyzes each file as one
// measured characteristic.
func (s *AnalysisService) AnalyzeInput(ctx context.Context, inputPath string, sampleSize int) ([]FileReport, error) {
	files, err := dataprocessing.DiscoverFiles(inputPath)
	if err != nil {
		return nil, err
	}

	loaded, err := dataprocessing.LoadFiles(ctx, s.logger, files)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, 0, len(loaded))
	for _, fr := range loaded {
		result, err := s.AnalyzeRecords(ctx, fr.Records, sampleSize)
		if err != nil {
			return nil, fmt.Errorf("analyze %s: %w", filepath.Base(fr.Path), err)
		}
		reports = append(reports, FileReport{
			Path:   fr.Path,
			Name:   reportName(fr.Path),
			Result: result,
		})
	}

	return reports, nil
}

// ExportReports writes one CSV and one JSON report per analyzed file into
// outDir.
func (s *AnalysisService) ExportReports(ctx context.Context, reports []FileReport, outDir string) error {
	csvWriter := exporter.NewCSVWriter(outDir)

	for _, report := range reports {
		if err := exporter.WriteReportCSV(csvWriter, report.Name+".csv", report.Result); err != nil {
			return fmt.Errorf("write csv report for %s: %w", report.Name, err)
		}
		if err := exporter.WriteReportJSON(filepath.Join(outDir, report.Name+".json"), report.Result); err != nil {
			return fmt.Errorf("write json report for %s: %w", report.Name, err)
		}

		s.logger.InfoContext(ctx, "report written",
			slog.String("name", report.Name),
			slog.String("dir", outDir))
	}

	return nil
}

// reportName derives the report base name from the input file name.
func reportName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
