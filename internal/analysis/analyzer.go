package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"voltlab/internal/dataset"
)

// Analyzer computes descriptive statistics and a linear fit over a
// cleaned V-I dataset.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// AnalyzeFile loads the dataset at path, cleans it, and analyzes it.
// It returns dataset.ErrNotFound (wrapped) when the file does not exist
// so callers can fail fast without further action. The cleaned dataset
// is returned alongside the summary for chart rendering.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Summary, *dataset.Dataset, error) {
	a.logger.InfoContext(ctx, "loading dataset", slog.String("path", path))

	raw, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}

	summary, clean, err := a.Analyze(ctx, raw)
	if err != nil {
		return nil, nil, err
	}
	summary.SourceFile = path
	return summary, clean, nil
}

// Analyze cleans the raw dataset and computes the summary statistics
// and least-squares fit. The input is not mutated.
func (a *Analyzer) Analyze(ctx context.Context, raw *dataset.Dataset) (*Summary, *dataset.Dataset, error) {
	if raw.HasMissing() {
		a.logger.InfoContext(ctx, "missing values detected, dropping incomplete rows",
			slog.Int("missing", raw.MissingCount()))
	}

	clean := raw.DropMissing()

	summary := &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		RawRows:     raw.Len(),
		CleanRows:   clean.Len(),
		DroppedRows: raw.Len() - clean.Len(),
	}

	if clean.Len() < 2 {
		return nil, nil, fmt.Errorf("not enough complete records to analyze: %d", clean.Len())
	}

	if err := a.computeStatistics(summary, clean); err != nil {
		return nil, nil, fmt.Errorf("compute statistics: %w", err)
	}

	fit, err := FitLinear(clean.Current, clean.Voltage)
	if err != nil {
		return nil, nil, fmt.Errorf("linear fit: %w", err)
	}
	summary.Fit = fit

	a.logger.InfoContext(ctx, "analysis completed",
		slog.String("run_id", summary.RunID),
		slog.Int("raw_rows", summary.RawRows),
		slog.Int("clean_rows", summary.CleanRows),
		slog.Float64("slope", fit.Slope),
		slog.Float64("correlation", summary.Correlation))

	return summary, clean, nil
}

// computeStatistics fills the descriptive statistics fields of summary
func (a *Analyzer) computeStatistics(summary *Summary, clean *dataset.Dataset) error {
	var err error

	if summary.CurrentMean, err = stats.Mean(clean.Current); err != nil {
		return fmt.Errorf("current mean: %w", err)
	}
	if summary.VoltageMean, err = stats.Mean(clean.Voltage); err != nil {
		return fmt.Errorf("voltage mean: %w", err)
	}
	if summary.VoltageVariance, err = stats.PopulationVariance(clean.Voltage); err != nil {
		return fmt.Errorf("voltage variance: %w", err)
	}
	if summary.VoltageStdDev, err = stats.StandardDeviationPopulation(clean.Voltage); err != nil {
		return fmt.Errorf("voltage std dev: %w", err)
	}
	if summary.Correlation, err = stats.Pearson(clean.Current, clean.Voltage); err != nil {
		return fmt.Errorf("pearson correlation: %w", err)
	}

	return nil
}

// FitLinear computes the least-squares line through (x, y):
// slope = cov(x,y)/var(x), intercept = mean(y) - slope*mean(x).
func FitLinear(x, y []float64) (LinearFit, error) {
	if len(x) != len(y) {
		return LinearFit{}, fmt.Errorf("mismatched series lengths: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return LinearFit{}, fmt.Errorf("need at least 2 points, got %d", len(x))
	}

	cov, err := stats.CovariancePopulation(x, y)
	if err != nil {
		return LinearFit{}, fmt.Errorf("covariance: %w", err)
	}
	varX, err := stats.PopulationVariance(x)
	if err != nil {
		return LinearFit{}, fmt.Errorf("variance: %w", err)
	}
	if varX == 0 {
		return LinearFit{}, fmt.Errorf("x values are constant, fit is undefined")
	}

	meanX, err := stats.Mean(x)
	if err != nil {
		return LinearFit{}, fmt.Errorf("mean x: %w", err)
	}
	meanY, err := stats.Mean(y)
	if err != nil {
		return LinearFit{}, fmt.Errorf("mean y: %w", err)
	}

	slope := cov / varX
	return LinearFit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}
