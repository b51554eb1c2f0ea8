package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeTempCSV(t, "shaft-diameter.csv",
		"Actual,From,To\n"+
			"10.2,8,14\n"+
			"11.5,8,14\n"+
			"12.8,8,14\n")

	records, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "10.2", records[0].ActualSpecification)
	assert.Equal(t, "8", records[0].FromSpecification)
	assert.Equal(t, "14", records[0].ToSpecification)
}

func TestParseCSV_BOMAndTolerantHeaders(t *testing.T) {
	path := writeTempCSV(t, "bom.csv",
		"\uFEFFMeasured Value,LSL,USL\n"+
			"5.1,4,6\n"+
			"5.3,4,6\n")

	records, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "5.1", records[0].ActualSpecification)
	assert.Equal(t, "4", records[0].FromSpecification)
	assert.Equal(t, "6", records[0].ToSpecification)
}

func TestParseCSV_SkipsPreambleAndEmptyRows(t *testing.T) {
	path := writeTempCSV(t, "preamble.csv",
		"Characteristic: shaft diameter\n"+
			"\n"+
			"Actual,From Specification,To Specification\n"+
			"10,8,14\n"+
			"\n"+
			"11,8,14\n")

	records, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "11", records[1].ActualSpecification)
}

func TestParseCSV_MalformedValuesAreKeptRaw(t *testing.T) {
	// Validation happens in the analysis engine, not the parser.
	path := writeTempCSV(t, "raw.csv",
		"Actual,From,To\n"+
			"abc,8,14\n"+
			"10,,14\n")

	records, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "abc", records[0].ActualSpecification)
	assert.Equal(t, "", records[1].FromSpecification)
}

func TestParseCSV_NoHeader(t *testing.T) {
	path := writeTempCSV(t, "noheader.csv",
		"10,8,14\n"+
			"11,8,14\n")

	_, err := ParseCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row")
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	_, err := ParseFile("records.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		wantOK bool
	}{
		{"canonical", []string{"Actual", "From", "To"}, true},
		{"spec style", []string{"ActualSpecification", "FromSpecification", "ToSpecification"}, true},
		{"limits style", []string{"Measurement", "Lower Limit", "Upper Limit"}, true},
		{"extra columns", []string{"Part", "Operator", "Actual", "LSL", "USL"}, true},
		{"missing upper", []string{"Actual", "From"}, false},
		{"data row", []string{"10.2", "8", "14"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := mapColumns(tt.row)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
