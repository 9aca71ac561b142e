package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "experiment_data.csv", cfg.Paths.DatasetFile)

	assert.Equal(t, 50, cfg.Generator.Points)
	assert.Equal(t, 0.0, cfg.Generator.CurrentMin)
	assert.Equal(t, 10.0, cfg.Generator.CurrentMax)
	assert.Equal(t, 5.0, cfg.Generator.Resistance)
	assert.Equal(t, 2.5, cfg.Generator.NoiseStdDev)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, []int{5, 15}, cfg.Generator.MissingIndices)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("VOLTLAB_SERVER_PORT", "9090")
	t.Setenv("VOLTLAB_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDefaultGeneratorConfig_MatchesLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cfg.Generator, DefaultGeneratorConfig())
}

func TestLoad_FileValuesSurviveEnvDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 3000
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	// File values hold against the env-side defaults
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// Fields the file leaves unset fall back to the defaults
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 50, cfg.Generator.Points)
}

func TestLoad_ExplicitEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 3000
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("VOLTLAB_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "too few points",
			mutate:  func(c *Config) { c.Generator.Points = 1 },
			wantErr: "invalid generator config",
		},
		{
			name: "inverted current range",
			mutate: func(c *Config) {
				c.Generator.CurrentMin = 10
				c.Generator.CurrentMax = 5
			},
			wantErr: "invalid generator config",
		},
		{
			name:    "negative noise",
			mutate:  func(c *Config) { c.Generator.NoiseStdDev = -1 },
			wantErr: "invalid generator config",
		},
		{
			name:    "missing index out of range",
			mutate:  func(c *Config) { c.Generator.MissingIndices = []int{50} },
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 3000
logging:
  level: warn
  format: text
generator:
  points: 100
  resistance: 2.2
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := loadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 100, cfg.Generator.Points)
	assert.Equal(t, 2.2, cfg.Generator.Resistance)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not a map"), 0644))

	_, err := loadFromFile(configPath)
	assert.Error(t, err)
}
