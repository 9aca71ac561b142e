// Command voltlab runs the full V-I experiment pipeline: it creates the
// synthetic dataset if none exists, cleans and analyzes it, prints the
// statistics, renders the scatter+fit chart, and exports the summary
// reports (JSON, CSV, XLSX).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"voltlab/internal/analysis"
	"voltlab/internal/chart"
	"voltlab/internal/config"
	"voltlab/internal/dataset"
	"voltlab/internal/exporter"
	"voltlab/internal/infrastructure"
)

func main() {
	dataPath := flag.String("data", "", "dataset csv path (defaults to data/experiment_data.csv relative to executable)")
	chartPath := flag.String("chart", "", "chart output path (defaults to reports/vi_characteristics.png)")
	regen := flag.Bool("regen", false, "regenerate the dataset even if it already exists")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *dataPath == "" {
		*dataPath = paths.DatasetCSV
	}
	if *chartPath == "" {
		*chartPath = paths.ChartPNG
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = fallbackConfig(paths)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Generate the dataset first when it is absent (or forced); the
	// analysis always runs afterwards against the same path.
	if _, err := os.Stat(*dataPath); os.IsNotExist(err) || *regen {
		gen := dataset.NewGenerator(cfg.Generator, logger)
		if err := gen.WriteFile(*dataPath); err != nil {
			logger.Error("Failed to generate dataset",
				slog.String("path", *dataPath),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Created synthetic dataset: %s\n", *dataPath)
	}

	fmt.Printf("Loading data from %s...\n", *dataPath)

	analyzer := analysis.NewAnalyzer(logger)
	summary, clean, err := analyzer.AnalyzeFile(ctx, *dataPath)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			fmt.Printf("Error: file %s not found.\n", *dataPath)
			os.Exit(1)
		}
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(summary)

	renderer := chart.NewRenderer(chart.DefaultOptions(), logger)
	if err := renderer.Render(clean, summary.Fit, *chartPath); err != nil {
		logger.Error("Failed to render chart", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Printf("\nChart written to %s\n", *chartPath)

	writer := exporter.NewWriter(logger)
	exports := []struct {
		name string
		fn   func() error
	}{
		{paths.SummaryJSON, func() error { return writer.WriteJSON(summary, paths.SummaryJSON) }},
		{paths.SummaryCSV, func() error { return writer.WriteCSV(summary, paths.SummaryCSV) }},
		{paths.SummaryXLSX, func() error { return writer.WriteXLSX(summary, clean, paths.SummaryXLSX) }},
	}
	for _, export := range exports {
		if err := export.fn(); err != nil {
			logger.Error("Failed to write report",
				slog.String("path", export.name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	fmt.Printf("Reports written to %s\n", paths.ReportsDir)
}

// fallbackConfig returns the configuration used when config.Load fails.
// It must carry a complete Generator section: the generator consumes it
// directly, and a zero-valued section would silently write an empty
// dataset that poisons every later run.
func fallbackConfig(paths *config.Paths) *config.Config {
	return &config.Config{
		Logging: config.LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: paths.GetLogPath("voltlab.log"),
		},
		Generator: config.DefaultGeneratorConfig(),
	}
}

// printSummary prints the human-readable statistics block
func printSummary(s *analysis.Summary) {
	fmt.Printf("Raw data rows: %d\n", s.RawRows)
	if s.DroppedRows > 0 {
		fmt.Println("Missing values detected. Dropping incomplete rows...")
	}
	fmt.Printf("Cleaned data rows: %d\n", s.CleanRows)

	fmt.Println("\n--- Statistical Analysis ---")
	fmt.Printf("Voltage Mean: %.2f V\n", s.VoltageMean)
	fmt.Printf("Voltage Variance: %.2f V^2\n", s.VoltageVariance)
	fmt.Printf("Voltage Std Dev: %.2f V\n", s.VoltageStdDev)
	fmt.Printf("Current Mean: %.2f A\n", s.CurrentMean)
	fmt.Printf("Correlation (Current vs Voltage): %.4f\n", s.Correlation)
	fmt.Printf("Linear Fit: V = %.4f*I + %.4f (R ~= %.2f Ohm)\n",
		s.Fit.Slope, s.Fit.Intercept, s.Fit.Slope)
}
