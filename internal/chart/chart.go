// Package chart renders V-I scatter charts with the fitted trend line.
// Charts are written as image files (format chosen by extension, e.g.
// .png or .svg) under the reports directory; the report server serves
// them for viewing.
package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"voltlab/internal/analysis"
	"voltlab/internal/dataset"
)

// Options configures chart rendering
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the standard V-I characteristics chart layout
func DefaultOptions() Options {
	return Options{
		Title:  "V-I Characteristics (Ohm's Law Experiment)",
		XLabel: "Current (A)",
		YLabel: "Voltage (V)",
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Renderer draws scatter-plus-fit charts for cleaned datasets
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Width == 0 || opts.Height == 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	return &Renderer{opts: opts, logger: logger}
}

// Render draws the cleaned measurements as a scatter overlaid with the
// fitted line and saves the chart to path. The dataset must already be
// cleaned: NaN points would break the plotters.
func (r *Renderer) Render(clean *dataset.Dataset, fit analysis.LinearFit, path string) error {
	if clean.Len() == 0 {
		return fmt.Errorf("cannot render empty dataset")
	}
	if clean.HasMissing() {
		return fmt.Errorf("dataset contains missing values, clean it before rendering")
	}

	p := plot.New()
	p.Title.Text = r.opts.Title
	p.X.Label.Text = r.opts.XLabel
	p.Y.Label.Text = r.opts.YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, clean.Len())
	for i := range clean.Current {
		pts[i].X = clean.Current[i]
		pts[i].Y = clean.Voltage[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.Color = color.RGBA{B: 255, A: 255}
	p.Add(scatter)
	p.Legend.Add("Experimental Data", scatter)

	minX, maxX := clean.Current[0], clean.Current[0]
	for _, c := range clean.Current {
		if c < minX {
			minX = c
		}
		if c > maxX {
			maxX = c
		}
	}
	line, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: fit.At(minX)},
		{X: maxX, Y: fit.At(maxX)},
	})
	if err != nil {
		return fmt.Errorf("build fit line: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Linear Fit (R=%.2f Ohm)", fit.Slope), line)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}
	if err := p.Save(r.opts.Width, r.opts.Height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	r.logger.Info("rendered chart",
		slog.String("path", path),
		slog.Int("points", clean.Len()),
		slog.Float64("slope", fit.Slope))

	return nil
}
