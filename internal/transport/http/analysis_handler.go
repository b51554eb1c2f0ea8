package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "spccli/internal/errors"
	"spccli/pkg/contracts/domain"
)

// AnalysisServiceInterface is the part of the analysis service the handler
// needs. Declared here so tests can substitute a stub.
type AnalysisServiceInterface interface {
	AnalyzeRecords(ctx context.Context, records []domain.InspectionRecord, sampleSize int) (*domain.AnalysisResult, error)
	AnalyzeFile(ctx context.Context, path string, sampleSize int) (*domain.AnalysisResult, error)
}

// AnalysisHandler handles analysis HTTP requests
type AnalysisHandler struct {
	service      AnalysisServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// AnalysisRequest is the POST /api/analysis payload.
type AnalysisRequest struct {
	Records    []domain.InspectionRecord `json:"records" validate:"required,min=1,dive"`
	SampleSize int                       `json:"sample_size" validate:"omitempty,min=1,max=5"`
}

// Bind implements render.Binder
func (req *AnalysisRequest) Bind(r *http.Request) error {
	return nil
}

// AnalysisResponse wraps the analysis result with the request trace id.
type AnalysisResponse struct {
	Result  *domain.AnalysisResult `json:"result"`
	TraceID string                 `json:"trace_id,omitempty"`
}

// Render implements render.Renderer
func (resp *AnalysisResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service AnalysisServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalysisHandler {
	return &AnalysisHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "analysis_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the analysis routes
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.Analyze)
	r.Get("/file", h.AnalyzeFile)

	return r
}

// Analyze handles POST /api/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	var req AnalysisRequest
	if err := render.Bind(r, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.handleValidationError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "analysis requested",
		slog.String("request_id", reqID),
		slog.Int("records", len(req.Records)),
		slog.Int("sample_size", req.SampleSize))

	result, err := h.service.AnalyzeRecords(r.Context(), req.Records, req.SampleSize)
	if err != nil {
		render.Render(w, r, apierrors.MapAnalysisError(err, reqID))
		return
	}

	render.Render(w, r, &AnalysisResponse{Result: result, TraceID: reqID})
}

// fileQuery is the GET /api/analysis/file query contract.
type fileQuery struct {
	Path       string `validate:"required,max=4096"`
	SampleSize int    `validate:"omitempty,min=1,max=5"`
}

// AnalyzeFile handles GET /api/analysis/file?path=...&sample_size=n for
// server-side inspection files.
func (h *AnalysisHandler) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	q := fileQuery{Path: r.URL.Query().Get("path")}
	if raw := r.URL.Query().Get("sample_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("sample_size", "sample_size must be an integer"))
			return
		}
		q.SampleSize = n
	}

	if err := h.validate.Struct(&q); err != nil {
		h.handleValidationError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "file analysis requested",
		slog.String("request_id", reqID),
		slog.String("path", q.Path),
		slog.Int("sample_size", q.SampleSize))

	result, err := h.service.AnalyzeFile(r.Context(), q.Path, q.SampleSize)
	if err != nil {
		render.Render(w, r, apierrors.MapAnalysisError(err, reqID))
		return
	}

	render.Render(w, r, &AnalysisResponse{Result: result, TraceID: reqID})
}

// handleValidationError converts validator errors to the API error shape.
func (h *AnalysisHandler) handleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]apierrors.ValidationError, 0, len(verrs))
		for _, ve := range verrs {
			fields = append(fields, apierrors.ValidationError{
				Field:   ve.Field(),
				Message: ve.Tag(),
			})
		}
		h.errorHandler.HandleError(w, r, apierrors.NewValidationErrors(fields))
		return
	}
	h.errorHandler.HandleError(w, r, apierrors.InvalidRequestWithError(err))
}
