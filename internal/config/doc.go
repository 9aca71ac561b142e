// Package config provides centralized configuration for voltlab.
//
// Configuration is loaded from environment variables (prefix VOLTLAB)
// merged with an optional config.yaml next to the executable. The Paths
// type is the single source of truth for file locations: dataset CSV,
// report outputs, and logs.
package config
