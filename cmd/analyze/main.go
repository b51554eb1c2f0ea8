package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"spccli/internal/config"
	"spccli/internal/infrastructure"
	"spccli/internal/services"
)

func main() {
	inPath := flag.String("in", "", "input CSV/XLSX file or directory (defaults to configured data dir)")
	outDir := flag.String("out", "", "output directory for reports (defaults to configured reports dir)")
	sampleSize := flag.Int("sample-size", 0, "subgroup sample size 1-5 (defaults to configured value)")
	flag.Parse()

	if err := run(*inPath, *outDir, *sampleSize); err != nil {
		slog.Error("Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(inPath, outDir string, sampleSize int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	if inPath == "" {
		inPath = cfg.Paths.DataDir
	}
	if outDir == "" {
		outDir = cfg.Paths.ReportsDir
	}
	if sampleSize == 0 {
		sampleSize = cfg.Analysis.DefaultSampleSize
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("create required directories: %w", err)
	}

	logger.Info("Starting analysis",
		slog.String("input", inPath),
		slog.String("output", outDir),
		slog.Int("sample_size", sampleSize))

	ctx := infrastructure.EnsureTraceID(context.Background())
	service := services.NewAnalysisService(cfg.Analysis.DefaultSampleSize, logger)

	reports, err := service.AnalyzeInput(ctx, inPath, sampleSize)
	if err != nil {
		return err
	}

	if err := service.ExportReports(ctx, reports, outDir); err != nil {
		return err
	}

	for _, report := range reports {
		fmt.Printf("%s: cp=%.4f cpk=%.4f pp=%.4f ppk=%.4f decision=%q\n",
			report.Name,
			report.Result.Metrics.Cp,
			report.Result.Metrics.Cpk,
			report.Result.Metrics.Pp,
			report.Result.Metrics.Ppk,
			report.Result.ProcessInterpretation.DecisionRemark)
	}

	logger.Info("Analysis complete",
		slog.Int("files", len(reports)),
		slog.String("reports_dir", outDir))

	return nil
}
