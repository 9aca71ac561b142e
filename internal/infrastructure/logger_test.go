package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltlab/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestCreateLogger_Console(t *testing.T) {
	logger, err := createLogger(config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: "console",
	})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestCreateLogger_TextFormat(t *testing.T) {
	logger, err := createLogger(config.LoggingConfig{
		Level:  "debug",
		Format: "text",
		Output: "console",
	})
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestCreateLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "test.log")

	logger, err := createLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("test entry", slog.String("key", "value"))
	require.NoError(t, CloseLogger())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test entry")
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestGetLogger_Uninitialized(t *testing.T) {
	assert.NotNil(t, GetLogger())
}

func TestCloseLogger_NoFile(t *testing.T) {
	assert.NoError(t, CloseLogger())
}
