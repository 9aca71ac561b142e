// Package http wires the report server's chi router and handlers.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"voltlab/internal/analysis"
	"voltlab/internal/dataset"
	apierrors "voltlab/internal/errors"
)

// ReportServiceInterface abstracts the report service for the handler
type ReportServiceInterface interface {
	Summary(ctx context.Context) (*analysis.Summary, error)
	ChartPath() string
	Health(ctx context.Context) map[string]interface{}
}

// ReportHandler serves analysis summaries and rendered charts
type ReportHandler struct {
	service ReportServiceInterface
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{
		service: service,
		logger:  logger.With(slog.String("component", "report_handler")),
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/chart", h.GetChart)
	r.Get("/health", h.GetHealth)

	return r
}

// GetSummary handles GET /api/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// GetChart handles GET /api/chart. The summary is refreshed first so the
// served image always matches the current dataset.
func (h *ReportHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Summary(r.Context()); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	chartPath := h.service.ChartPath()
	if _, err := os.Stat(chartPath); err != nil {
		apierrors.HandleError(w, r, apierrors.ErrChartNotFound)
		return
	}

	http.ServeFile(w, r, chartPath)
}

// GetHealth handles GET /api/health
func (h *ReportHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Health(r.Context()))
}

// handleServiceError maps service errors to structured API errors
func (h *ReportHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "report service error", slog.String("error", err.Error()))

	if errors.Is(err, dataset.ErrNotFound) {
		apierrors.HandleError(w, r, apierrors.ErrDatasetNotFound)
		return
	}
	apierrors.HandleError(w, r, apierrors.AnalysisError(err))
}
