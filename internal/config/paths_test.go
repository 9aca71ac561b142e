package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsIn(t *testing.T) {
	base := filepath.Join("some", "base")
	paths := PathsIn(base)

	assert.Equal(t, base, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	assert.Equal(t, filepath.Join(base, "data", "experiment_data.csv"), paths.DatasetCSV)
	assert.Equal(t, filepath.Join(base, "reports", "vi_characteristics.png"), paths.ChartPNG)
	assert.Equal(t, filepath.Join(base, "reports", "summary.json"), paths.SummaryJSON)
	assert.Equal(t, filepath.Join(base, "reports", "summary.csv"), paths.SummaryCSV)
	assert.Equal(t, filepath.Join(base, "reports", "summary.xlsx"), paths.SummaryXLSX)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := PathsIn(base)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing directories
	require.NoError(t, paths.EnsureDirectories())
}

func TestGetLogPath(t *testing.T) {
	paths := PathsIn("base")
	assert.Equal(t, filepath.Join("base", "logs", "pipeline.log"), paths.GetLogPath("pipeline.log"))
}
