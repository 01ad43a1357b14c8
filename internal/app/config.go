package app

import (
	"errors"
	"fmt"
	"slices"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Paths are declaration files or directories.
	Paths []string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int
	// NoBuiltins skips the compiled-in declaration modules.
	NoBuiltins bool
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LogFormat:   "text",
		LogLevel:    "info",
		WorkerCount: 4,
	}
}

// NewConfig validates cfg and fills empty log settings with defaults.
func NewConfig(cfg Config) (*Config, error) {
	defaults := DefaultConfig()
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	var errs []error
	if !slices.Contains(logLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level %q, expected one of %v", cfg.LogLevel, logLevels))
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid log format %q, expected one of %v", cfg.LogFormat, logFormats))
	}
	if cfg.WorkerCount < 0 {
		errs = append(errs, fmt.Errorf("worker count must not be negative, got %d", cfg.WorkerCount))
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		errs = append(errs, fmt.Errorf("healthcheck port %d out of range", cfg.HealthcheckPort))
	}
	if cfg.NoBuiltins && len(cfg.Paths) == 0 {
		errs = append(errs, errors.New("no declaration paths given and builtin modules are disabled"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}
