// Package services contains the application services that sit between
// the HTTP transport and the analysis core.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"voltlab/internal/analysis"
	"voltlab/internal/chart"
	"voltlab/internal/dataset"
)

// ReportService produces analysis summaries and charts for the report
// server. Results are cached against the dataset file's modification
// time, so the analysis re-runs only when the file changes.
type ReportService struct {
	datasetPath string
	chartPath   string
	analyzer    *analysis.Analyzer
	renderer    *chart.Renderer
	logger      *slog.Logger

	mu       sync.Mutex
	cached   *analysis.Summary
	cachedAt time.Time
}

// NewReportService creates a report service for the given dataset and
// chart output paths.
func NewReportService(datasetPath, chartPath string, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		datasetPath: datasetPath,
		chartPath:   chartPath,
		analyzer:    analysis.NewAnalyzer(logger),
		renderer:    chart.NewRenderer(chart.DefaultOptions(), logger),
		logger:      logger.With(slog.String("component", "report_service")),
	}
}

// Summary returns the analysis summary for the current dataset,
// re-running the analysis when the file is newer than the cached result.
func (s *ReportService) Summary(ctx context.Context) (*analysis.Summary, error) {
	info, err := os.Stat(s.datasetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", dataset.ErrNotFound, s.datasetPath)
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && !info.ModTime().After(s.cachedAt) {
		return s.cached, nil
	}

	summary, clean, err := s.analyzer.AnalyzeFile(ctx, s.datasetPath)
	if err != nil {
		return nil, err
	}

	if err := s.renderer.Render(clean, summary.Fit, s.chartPath); err != nil {
		return nil, err
	}

	s.cached = summary
	s.cachedAt = info.ModTime()
	s.logger.InfoContext(ctx, "refreshed report cache",
		slog.String("run_id", summary.RunID),
		slog.Time("dataset_mtime", s.cachedAt))

	return summary, nil
}

// ChartPath returns the path of the rendered chart image
func (s *ReportService) ChartPath() string {
	return s.chartPath
}

// DatasetPath returns the path of the dataset CSV
func (s *ReportService) DatasetPath() string {
	return s.datasetPath
}

// Health reports basic liveness information
func (s *ReportService) Health(ctx context.Context) map[string]interface{} {
	status := "healthy"
	if _, err := os.Stat(s.datasetPath); err != nil {
		status = "degraded"
	}
	return map[string]interface{}{
		"status":    status,
		"dataset":   s.datasetPath,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
