package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"voltlab/internal/config"
)

// Generator produces synthetic V-I measurement datasets following
// Ohm's law (V = I * R) with additive Gaussian measurement noise.
// Output is deterministic for a fixed seed.
type Generator struct {
	cfg    config.GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a generator with the given configuration
func NewGenerator(cfg config.GeneratorConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate builds the synthetic dataset in memory.
// Current values are evenly spaced over [CurrentMin, CurrentMax] with both
// endpoints included; the configured missing indices have their voltage
// blanked to NaN to exercise downstream cleaning.
func (g *Generator) Generate() *Dataset {
	n := g.cfg.Points
	rng := rand.New(rand.NewSource(g.cfg.Seed))

	ds := &Dataset{
		Current: make([]float64, n),
		Voltage: make([]float64, n),
	}

	step := 0.0
	if n > 1 {
		step = (g.cfg.CurrentMax - g.cfg.CurrentMin) / float64(n-1)
	}
	for i := 0; i < n; i++ {
		current := g.cfg.CurrentMin + float64(i)*step
		noise := rng.NormFloat64() * g.cfg.NoiseStdDev
		ds.Current[i] = current
		ds.Voltage[i] = current*g.cfg.Resistance + noise
	}

	for _, idx := range g.cfg.MissingIndices {
		if idx < 0 || idx >= n {
			g.logger.Warn("ignoring out-of-range missing index",
				slog.Int("index", idx),
				slog.Int("points", n))
			continue
		}
		ds.Voltage[idx] = math.NaN()
	}

	return ds
}

// WriteFile generates the dataset and writes it to path as CSV,
// creating or overwriting the file.
func (g *Generator) WriteFile(path string) error {
	ds := g.Generate()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{ColumnCurrent, ColumnVoltage}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := 0; i < ds.Len(); i++ {
		record := []string{formatValue(ds.Current[i]), formatValue(ds.Voltage[i])}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	g.logger.Info("created synthetic dataset",
		slog.String("path", path),
		slog.Int("points", ds.Len()),
		slog.Int("missing", ds.MissingCount()),
		slog.Float64("resistance", g.cfg.Resistance))

	return nil
}

// formatValue renders a measurement for CSV output, empty for missing
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
