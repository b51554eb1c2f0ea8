package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"spccli/pkg/contracts/domain"
)

// ParseXLSX reads inspection records from an Excel workbook. The sheet
// holding the records is located by name first, then by header content.
func ParseXLSX(path string) ([]domain.InspectionRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var rows [][]string
	var sheetFound bool
	var sheetName string

	// Try common sheet names first
	possibleNames := []string{"Inspection", "Inspections", "Measurements", "Data", "Sheet1"}

	for _, name := range possibleNames {
		if testRows, testErr := f.GetRows(name); testErr == nil && len(testRows) > 0 {
			if hasRecordHeader(testRows) {
				rows = testRows
				sheetFound = true
				sheetName = name
				break
			}
		}
	}

	// Fall back to scanning every sheet for a usable header row
	if !sheetFound {
		for _, name := range f.GetSheetList() {
			if testRows, testErr := f.GetRows(name); testErr == nil && hasRecordHeader(testRows) {
				rows = testRows
				sheetFound = true
				sheetName = name
				break
			}
		}
	}

	if !sheetFound {
		names, _ := SheetNames(path)
		return nil, fmt.Errorf("could not find inspection data sheet in file (sheets: %s)", strings.Join(names, ", "))
	}

	slog.Debug("inspection sheet located",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	return recordsFromRows(rows, path)
}

// hasRecordHeader reports whether any of the first rows map to the expected
// record columns.
func hasRecordHeader(rows [][]string) bool {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for _, row := range rows[:limit] {
		if _, ok := mapColumns(row); ok {
			return true
		}
	}
	return false
}

// SheetNames returns the sheet names of a workbook, for diagnostics.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSpace(n))
	}
	return out, nil
}
