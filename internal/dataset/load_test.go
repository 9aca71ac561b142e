package dataset

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltlab/internal/config"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experiment_data.csv")

	cfg := config.GeneratorConfig{
		Points:         50,
		CurrentMin:     0,
		CurrentMax:     10,
		Resistance:     5,
		NoiseStdDev:    2.5,
		Seed:           42,
		MissingIndices: []int{5, 15},
	}
	require.NoError(t, NewGenerator(cfg, nil).WriteFile(path))

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, ds.Len())
	assert.Equal(t, 2, ds.MissingCount())
	assert.True(t, math.IsNaN(ds.Voltage[5]))
	assert.True(t, math.IsNaN(ds.Voltage[15]))

	clean := ds.DropMissing()
	assert.Equal(t, 48, clean.Len())
	assert.False(t, clean.HasMissing())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_MissingValues(t *testing.T) {
	path := writeCSV(t, "Current_A,Voltage_V\n0,0.5\n1,\n2,10.1\n")

	ds, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 1, ds.MissingCount())
	assert.True(t, math.IsNaN(ds.Voltage[1]))
	assert.InDelta(t, 10.1, ds.Voltage[2], 1e-9)
}

func TestLoad_CleanFileUnchanged(t *testing.T) {
	path := writeCSV(t, "Current_A,Voltage_V\n0,0.1\n1,5.2\n2,9.8\n")

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	clean := ds.DropMissing()
	assert.Equal(t, ds.Len(), clean.Len())
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeCSV(t, "Current_A,Resistance_Ohm\n0,5\n1,5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Voltage_V")
}
