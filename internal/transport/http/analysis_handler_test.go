package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "spccli/internal/errors"
	"spccli/internal/spc"
	"spccli/pkg/contracts/domain"
)

type stubAnalysisService struct {
	result *domain.AnalysisResult
	err    error

	gotRecords    []domain.InspectionRecord
	gotSampleSize int
	gotPath       string
}

func (s *stubAnalysisService) AnalyzeRecords(ctx context.Context, records []domain.InspectionRecord, sampleSize int) (*domain.AnalysisResult, error) {
	s.gotRecords = records
	s.gotSampleSize = sampleSize
	return s.result, s.err
}

func (s *stubAnalysisService) AnalyzeFile(ctx context.Context, path string, sampleSize int) (*domain.AnalysisResult, error) {
	s.gotPath = path
	s.gotSampleSize = sampleSize
	return s.result, s.err
}

func newTestHandler(t *testing.T, stub *stubAnalysisService) *AnalysisHandler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewAnalysisHandler(stub, logger, apierrors.NewErrorHandler(logger, false))
}

func analysisBody(sampleSize int) string {
	return fmt.Sprintf(`{
		"sample_size": %d,
		"records": [
			{"actual_specification":"10","from_specification":"8","to_specification":"14"},
			{"actual_specification":"12","from_specification":"8","to_specification":"14"}
		]
	}`, sampleSize)
}

func TestAnalyze_Success(t *testing.T) {
	stub := &stubAnalysisService{
		result: &domain.AnalysisResult{
			Metrics: domain.ProcessMetrics{XBar: 11},
		},
	}
	h := newTestHandler(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(analysisBody(2)))
	req.Header.Set("Content-Type", "application/json")
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, stub.gotSampleSize)
	assert.Len(t, stub.gotRecords, 2)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, float64(11), resp.Result.Metrics.XBar)
}

func TestAnalyze_EmptyRecords(t *testing.T) {
	h := newTestHandler(t, &stubAnalysisService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(`{"records":[],"sample_size":5}`))
	req.Header.Set("Content-Type", "application/json")
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_SampleSizeOutOfRange(t *testing.T) {
	h := newTestHandler(t, &stubAnalysisService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(analysisBody(9)))
	req.Header.Set("Content-Type", "application/json")
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_ServiceError(t *testing.T) {
	stub := &stubAnalysisService{err: fmt.Errorf("analyze: %w", spc.ErrInsufficientData)}
	h := newTestHandler(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(analysisBody(5)))
	req.Header.Set("Content-Type", "application/json")
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "INSUFFICIENT_DATA", problem["error_code"])
}

func TestAnalyzeFile_Success(t *testing.T) {
	stub := &stubAnalysisService{result: &domain.AnalysisResult{}}
	h := newTestHandler(t, stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis/file?path=data/shaft.csv&sample_size=3", nil)
	h.AnalyzeFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data/shaft.csv", stub.gotPath)
	assert.Equal(t, 3, stub.gotSampleSize)
}

func TestAnalyzeFile_MissingPath(t *testing.T) {
	h := newTestHandler(t, &stubAnalysisService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis/file", nil)
	h.AnalyzeFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeFile_BadSampleSize(t *testing.T) {
	h := newTestHandler(t, &stubAnalysisService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis/file?path=x.csv&sample_size=abc", nil)
	h.AnalyzeFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
