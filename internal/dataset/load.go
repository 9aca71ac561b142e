package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrNotFound is returned when the dataset file does not exist.
// Callers are expected to report it and abort analysis.
var ErrNotFound = errors.New("dataset file not found")

// Load reads a dataset CSV from path. Empty cells parse to NaN so the
// missing-value invariant carries through to the in-memory form.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			ColumnCurrent: series.Float,
			ColumnVoltage: series.Float,
		}),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("failed to parse dataset CSV: %w", df.Error())
	}

	return fromDataFrame(df)
}

// fromDataFrame extracts the measurement columns from a dataframe
func fromDataFrame(df dataframe.DataFrame) (*Dataset, error) {
	names := make(map[string]bool, len(df.Names()))
	for _, name := range df.Names() {
		names[name] = true
	}
	for _, required := range []string{ColumnCurrent, ColumnVoltage} {
		if !names[required] {
			return nil, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	return &Dataset{
		Current: df.Col(ColumnCurrent).Float(),
		Voltage: df.Col(ColumnVoltage).Float(),
	}, nil
}
