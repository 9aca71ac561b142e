package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: the dataset CSV,
// generated reports, and log files all resolve through here.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known files
	DatasetCSV      string
	ChartPNG        string
	SummaryJSON     string
	SummaryCSV      string
	SummaryXLSX     string
}

// GetPaths returns the application paths relative to the executable location.
// Paths are always resolved against the executable directory, never the
// current working directory, so binaries behave the same from any cwd.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsIn(filepath.Dir(exe)), nil
}

// PathsIn builds the path set rooted at the given base directory.
// Layout:
//
//	base/
//	  ├── data/
//	  │   └── experiment_data.csv
//	  ├── reports/
//	  │   ├── vi_characteristics.png
//	  │   ├── summary.json
//	  │   ├── summary.csv
//	  │   └── summary.xlsx
//	  └── logs/
func PathsIn(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(baseDir, "reports")
	logsDir := filepath.Join(baseDir, "logs")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       logsDir,
		DatasetCSV:    filepath.Join(dataDir, "experiment_data.csv"),
		ChartPNG:      filepath.Join(reportsDir, "vi_characteristics.png"),
		SummaryJSON:   filepath.Join(reportsDir, "summary.json"),
		SummaryCSV:    filepath.Join(reportsDir, "summary.csv"),
		SummaryXLSX:   filepath.Join(reportsDir, "summary.xlsx"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.ReportsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
