package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
}

func TestNewWithDetails(t *testing.T) {
	err := NewWithDetails(http.StatusNotFound, "NOT_FOUND", "report missing", "report-2025.json")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "NOT_FOUND", err.ErrorCode)
	assert.Equal(t, "report-2025.json", err.Details)
}

func TestErrValidation(t *testing.T) {
	err := ErrValidation("sample_size", "must be between 1 and 5")

	require.NotNil(t, err.Details)
	ve, ok := err.Details.(ValidationError)
	require.True(t, ok)
	assert.Equal(t, "sample_size", ve.Field)
	assert.Equal(t, "must be between 1 and 5", ve.Message)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrAnalysisFailed)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "ANALYSIS_FAILED", resp.Error.ErrorCode)
}

func TestAppError(t *testing.T) {
	cause := fmt.Errorf("open data.csv: no such file")
	err := NewParsingError("failed to read inspection file", cause)

	assert.Contains(t, err.Error(), "PARSING")
	assert.Contains(t, err.Error(), "no such file")
	assert.Equal(t, cause, err.Unwrap())

	err.WithContext("file", "data.csv")
	assert.Equal(t, "data.csv", err.Context["file"])
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	pd := NewProblemDetails(http.StatusBadRequest, TypeValidation, "Validation Failed", "sample size out of range", "/api/analysis")
	pd.WithExtension("trace_id", "abc-123")

	data, err := json.Marshal(pd)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, TypeValidation, decoded["type"])
	assert.Equal(t, float64(http.StatusBadRequest), decoded["status"])
	assert.Equal(t, "abc-123", decoded["trace_id"])
}
