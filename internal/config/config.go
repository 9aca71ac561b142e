package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Generator GeneratorConfig `yaml:"generator" envconfig:"GENERATOR"`
}

// ServerConfig contains report server configuration
type ServerConfig struct {
	Port            int             `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"20"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"10"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/voltlab.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	ExecutableDir string `yaml:"executable_dir" envconfig:"EXECUTABLE_DIR"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir    string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports"`
	LogsDir       string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
	DatasetFile   string `yaml:"dataset_file" envconfig:"DATASET_FILE" default:"experiment_data.csv"`
}

// GeneratorConfig controls the synthetic dataset generator.
// Defaults reproduce the reference Ohm's-law experiment: 50 points on
// [0,10] A through a 5 Ohm resistor with Gaussian measurement noise,
// and two readings blanked out to exercise the cleaning step.
type GeneratorConfig struct {
	Points         int     `yaml:"points" envconfig:"POINTS" default:"50" validate:"gt=1"`
	CurrentMin     float64 `yaml:"current_min" envconfig:"CURRENT_MIN" default:"0"`
	CurrentMax     float64 `yaml:"current_max" envconfig:"CURRENT_MAX" default:"10" validate:"gtfield=CurrentMin"`
	Resistance     float64 `yaml:"resistance" envconfig:"RESISTANCE" default:"5" validate:"gt=0"`
	NoiseStdDev    float64 `yaml:"noise_std_dev" envconfig:"NOISE_STD_DEV" default:"2.5" validate:"gte=0"`
	Seed           int64   `yaml:"seed" envconfig:"SEED" default:"42"`
	MissingIndices []int   `yaml:"missing_indices" envconfig:"MISSING_INDICES" default:"5,15"`
}

// DefaultGeneratorConfig returns the generator defaults. Callers that
// cannot load configuration fall back to this so the generator never
// runs with a zero-valued section.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Points:         50,
		CurrentMin:     0,
		CurrentMax:     10,
		Resistance:     5,
		NoiseStdDev:    2.5,
		Seed:           42,
		MissingIndices: []int{5, 15},
	}
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("VOLTLAB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// getConfigFilePath returns the config file next to the executable,
// falling back to the working directory during development
func getConfigFilePath() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "config.yaml"
}

// mergeConfigs merges file config under env config. Env values win only
// when the variable is actually set: envconfig fills defaults for unset
// variables, and those are indistinguishable from explicit values, so an
// unconditional override would shadow every file value with a default.
// File gaps still fall back to the env-side defaults.
func mergeConfigs(file, env Config) Config {
	merged := file

	if envSet("VOLTLAB_SERVER_PORT") || merged.Server.Port == 0 {
		merged.Server.Port = env.Server.Port
	}
	if envSet("VOLTLAB_LOGGING_LEVEL") || merged.Logging.Level == "" {
		merged.Logging.Level = env.Logging.Level
	}
	if envSet("VOLTLAB_LOGGING_FORMAT") || merged.Logging.Format == "" {
		merged.Logging.Format = env.Logging.Format
	}
	if envSet("VOLTLAB_LOGGING_OUTPUT") || merged.Logging.Output == "" {
		merged.Logging.Output = env.Logging.Output
	}
	if envSet("VOLTLAB_LOGGING_FILE_PATH") || merged.Logging.FilePath == "" {
		merged.Logging.FilePath = env.Logging.FilePath
	}
	if envSet("VOLTLAB_PATHS_DATA_DIR") || merged.Paths.DataDir == "" {
		merged.Paths.DataDir = env.Paths.DataDir
	}
	if envSet("VOLTLAB_PATHS_DATASET_FILE") || merged.Paths.DatasetFile == "" {
		merged.Paths.DatasetFile = env.Paths.DatasetFile
	}
	generatorVars := []string{
		"VOLTLAB_GENERATOR_POINTS",
		"VOLTLAB_GENERATOR_CURRENT_MIN",
		"VOLTLAB_GENERATOR_CURRENT_MAX",
		"VOLTLAB_GENERATOR_RESISTANCE",
		"VOLTLAB_GENERATOR_NOISE_STD_DEV",
		"VOLTLAB_GENERATOR_SEED",
		"VOLTLAB_GENERATOR_MISSING_INDICES",
	}
	if envSet(generatorVars...) || merged.Generator.Points == 0 {
		merged.Generator = env.Generator
	}

	return merged
}

// envSet reports whether any of the given environment variables is set
func envSet(keys ...string) bool {
	for _, key := range keys {
		if _, ok := os.LookupEnv(key); ok {
			return true
		}
	}
	return false
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if err := validator.New().Struct(c.Generator); err != nil {
		return fmt.Errorf("invalid generator config: %w", err)
	}

	for _, idx := range c.Generator.MissingIndices {
		if idx < 0 || idx >= c.Generator.Points {
			return fmt.Errorf("missing index %d out of range [0,%d)", idx, c.Generator.Points)
		}
	}

	return nil
}
