package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spccli/internal/spc"
)

func testHandler(t *testing.T) *ErrorHandler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewErrorHandler(logger, false)
}

func TestErrorToProblem(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "context deadline",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantType:   TypeTimeout,
		},
		{
			name:       "api error",
			err:        ErrValidationFailed,
			wantStatus: http.StatusBadRequest,
			wantType:   TypeValidation,
		},
		{
			name:       "invalid sample size",
			err:        fmt.Errorf("analyze: %w", spc.ErrInvalidSampleSize),
			wantStatus: http.StatusBadRequest,
			wantType:   TypeInvalidSampleSize,
		},
		{
			name:       "insufficient data",
			err:        fmt.Errorf("analyze: %w", spc.ErrInsufficientData),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   TypeInsufficientData,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("report not found"),
			wantStatus: http.StatusNotFound,
			wantType:   TypeNotFound,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("something exploded"),
			wantStatus: http.StatusInternalServerError,
			wantType:   TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := h.ErrorToProblem(tt.err, req)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantType, problem.Type)
			assert.Equal(t, "/api/analysis", problem.Instance)
		})
	}
}

func TestHandleError_RendersProblemJSON(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
	rec := httptest.NewRecorder()

	h.HandleError(rec, req, ErrRateLimitExceeded)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, TypeRateLimit, problem["type"])
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", problem["error_code"])
}

func TestHandlePanic(t *testing.T) {
	h := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.HandlePanic(rec, req, "boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, TypeInternal, problem["type"])
}

func TestRecoveryMiddleware(t *testing.T) {
	h := testHandler(t)
	mw := RecoveryMiddleware(h)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analysis", nil)

	require.NotPanics(t, func() {
		mw(panicking).ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMapAnalysisError(t *testing.T) {
	renderer := MapAnalysisError(fmt.Errorf("wrap: %w", spc.ErrInvalidSampleSize), "trace-1")
	problem, ok := renderer.(*ProblemDetails)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, "INVALID_SAMPLE_SIZE", problem.Extensions["error_code"])

	renderer = MapAnalysisError(fmt.Errorf("wrap: %w", spc.ErrInsufficientData), "trace-2")
	problem, ok = renderer.(*ProblemDetails)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
}
