package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spccli/pkg/contracts/domain"
)

// columnMap holds the resolved positions of the three record columns.
type columnMap struct {
	actual int
	from   int
	to     int
}

// ParseFile dispatches on the file extension and parses inspection records.
func ParseFile(path string) ([]domain.InspectionRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(path)
	case ".xlsx", ".xlsm":
		return ParseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ParseCSV reads inspection records from a CSV file. The first row matching
// the expected header names is used to map columns; rows above it are ignored.
func ParseCSV(path string) ([]domain.InspectionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, row)
	}

	return recordsFromRows(rows, path)
}

// recordsFromRows locates the header row, maps columns, and extracts records.
// Shared between the CSV and XLSX parsers.
func recordsFromRows(rows [][]string, path string) ([]domain.InspectionRecord, error) {
	headerRow := -1
	var cols columnMap

	for i, row := range rows {
		if m, ok := mapColumns(row); ok {
			headerRow = i
			cols = m
			break
		}
	}

	if headerRow == -1 {
		return nil, fmt.Errorf("could not find header row in %s", filepath.Base(path))
	}

	slog.Debug("header row located",
		slog.String("file", filepath.Base(path)),
		slog.Int("row", headerRow),
		slog.Int("actual_col", cols.actual),
		slog.Int("from_col", cols.from),
		slog.Int("to_col", cols.to))

	var records []domain.InspectionRecord
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		if isEmptyRow(row) {
			continue
		}

		maxCol := cols.actual
		if cols.from > maxCol {
			maxCol = cols.from
		}
		if cols.to > maxCol {
			maxCol = cols.to
		}
		if len(row) <= maxCol {
			continue
		}

		records = append(records, domain.InspectionRecord{
			ActualSpecification: stripBOM(strings.TrimSpace(row[cols.actual])),
			FromSpecification:   stripBOM(strings.TrimSpace(row[cols.from])),
			ToSpecification:     stripBOM(strings.TrimSpace(row[cols.to])),
		})
	}

	slog.Info("inspection file parsed",
		slog.String("file", filepath.Base(path)),
		slog.Int("records", len(records)))

	return records, nil
}

// mapColumns inspects a candidate header row and resolves the positions of
// the actual, lower and upper specification columns.
func mapColumns(row []string) (columnMap, bool) {
	cols := columnMap{actual: -1, from: -1, to: -1}

	for j, header := range row {
		h := strings.ToLower(stripBOM(strings.TrimSpace(header)))
		switch {
		case cols.actual == -1 && isActualHeader(h):
			cols.actual = j
		case cols.from == -1 && isLowerHeader(h):
			cols.from = j
		case cols.to == -1 && isUpperHeader(h):
			cols.to = j
		}
	}

	if cols.actual == -1 || cols.from == -1 || cols.to == -1 {
		return columnMap{}, false
	}
	return cols, true
}

func isActualHeader(h string) bool {
	if h == "actual" || h == "measurement" || h == "measured value" || h == "value" {
		return true
	}
	return strings.Contains(h, "actual") && !strings.Contains(h, "from") && !strings.Contains(h, "to")
}

func isLowerHeader(h string) bool {
	switch h {
	case "from", "lsl", "lower", "lower limit", "lower specification",
		"from specification", "fromspecification":
		return true
	}
	return strings.HasPrefix(h, "from ") || strings.Contains(h, "lower") || strings.Contains(h, "lsl")
}

func isUpperHeader(h string) bool {
	switch h {
	case "to", "usl", "upper", "upper limit", "upper specification",
		"to specification", "tospecification":
		return true
	}
	return strings.HasPrefix(h, "to ") || strings.Contains(h, "upper") || strings.Contains(h, "usl")
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// stripBOM removes a UTF-8 byte order mark. Files exported from Excel on
// Windows frequently carry one on the first cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
