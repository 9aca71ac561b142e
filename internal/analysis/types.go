package analysis

import "time"

// LinearFit holds the least-squares line through (current, voltage) points.
// For an Ohm's-law experiment the slope estimates resistance in ohms.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the fitted line at the given current
func (f LinearFit) At(current float64) float64 {
	return f.Slope*current + f.Intercept
}

// Summary holds the complete result of one analysis run
type Summary struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	SourceFile  string    `json:"source_file,omitempty"`

	// Row counts before and after cleaning
	RawRows     int `json:"raw_rows"`
	CleanRows   int `json:"clean_rows"`
	DroppedRows int `json:"dropped_rows"`

	// Descriptive statistics over the cleaned dataset
	CurrentMean     float64 `json:"current_mean"`
	VoltageMean     float64 `json:"voltage_mean"`
	VoltageVariance float64 `json:"voltage_variance"`
	VoltageStdDev   float64 `json:"voltage_std_dev"`
	Correlation     float64 `json:"correlation"`

	Fit LinearFit `json:"fit"`
}
