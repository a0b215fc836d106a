package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ethkeygen/shared"
)

// Environment variables
const (
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvOutputFormat = "KEYGEN_OUTPUT_FORMAT"
	EnvRangeFilter  = "KEYGEN_RANGE_FILTER"
	EnvMetricsFile  = "KEYGEN_METRICS_FILE"
)

const defaultLogLevel = "warn"

// Config is the run configuration, loaded from environment variables
type Config struct {
	LogLevel     zapcore.Level
	LogJSON      bool
	OutputFormat string
	RangeFilter  bool
	MetricsFile  string // Prometheus textfile written on exit, disabled when empty
}

// loadConfig reads Config from the environment.
// An unparseable LOG_LEVEL falls back to the default level; every other
// malformed value is an error.
func loadConfig() (*Config, error) {
	cfg := &Config{
		LogJSON:      os.Getenv(EnvLogFormat) == "json",
		OutputFormat: shared.OutputFormatText,
		RangeFilter:  true,
		MetricsFile:  os.Getenv(EnvMetricsFile),
	}

	logLevel := os.Getenv(EnvLogLevel)
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}
	cfg.LogLevel = level

	if format := os.Getenv(EnvOutputFormat); format != "" {
		if format != shared.OutputFormatText && format != shared.OutputFormatJSON {
			return nil, shared.ErrInvalidConfig(EnvOutputFormat,
				fmt.Errorf("unknown output format %q (must be %s or %s)", format, shared.OutputFormatText, shared.OutputFormatJSON))
		}
		cfg.OutputFormat = format
	}

	if filter := os.Getenv(EnvRangeFilter); filter != "" {
		enabled, err := strconv.ParseBool(filter)
		if err != nil {
			return nil, shared.ErrInvalidConfig(EnvRangeFilter, err)
		}
		cfg.RangeFilter = enabled
	}

	return cfg, nil
}

// newLogger builds the zap logger. Records go to stdout, so logs always go to stderr.
func newLogger(cfg *Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.LogJSON {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapConfig.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.DisableStacktrace = true

	return zapConfig.Build()
}
