package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"spccli/pkg/contracts/domain"
)

// maxParallelFiles bounds concurrent file parsing.
const maxParallelFiles = 4

// FileRecords pairs a source file with the records parsed from it.
type FileRecords struct {
	Path    string
	Records []domain.InspectionRecord
}

// DiscoverFiles lists the parseable inspection files under a path. A file
// path is returned as-is; a directory is scanned one level deep.
func DiscoverFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx", ".xlsm":
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV or XLSX files found in %s", path)
	}
	return files, nil
}

// LoadFiles parses the given inspection files concurrently. The result order
// matches the input order. Any parse failure cancels the remaining work.
func LoadFiles(ctx context.Context, logger *slog.Logger, paths []string) ([]FileRecords, error) {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]FileRecords, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFiles)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, err := ParseFile(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
			}

			logger.InfoContext(ctx, "inspection file loaded",
				slog.String("file", filepath.Base(path)),
				slog.Int("records", len(records)))

			mu.Lock()
			results[i] = FileRecords{Path: path, Records: records}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
