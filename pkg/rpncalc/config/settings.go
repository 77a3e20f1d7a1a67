package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Keys recognised in configuration files.
const (
	KeyPrecedence = "precedence"
	KeyHistory    = "history"
	KeyLogLevel   = "log_level"
	KeyMetrics    = "metrics"
	KeyTracing    = "tracing"
)

// ErrInvalidSetting indicates a configuration value outside its allowed set.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the typed calculator configuration.
type Settings struct {
	// Precedence names the operator table: "uniform" or "standard".
	Precedence string
	// HistoryPath is the SQLite tape location; empty disables history.
	HistoryPath string
	// LogLevel is the minimum level written by the CLI logger.
	LogLevel slog.Level
	// Metrics enables OpenTelemetry metrics.
	Metrics bool
	// Tracing enables OpenTelemetry tracing.
	Tracing bool
	// Source is the file the settings came from; empty for Defaults.
	Source string
}

// Defaults returns the settings used when no file is given.
func Defaults() Settings {
	return Settings{
		Precedence: "uniform",
		LogLevel:   slog.LevelError,
	}
}

// Decode extracts Settings from cfg, filling gaps from Defaults.
func Decode(cfg Config) (Settings, error) {
	s := Defaults()

	s.Precedence = strings.ToLower(cfg.String(KeyPrecedence, s.Precedence))
	switch s.Precedence {
	case "uniform", "standard":
	default:
		return Settings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, KeyPrecedence, s.Precedence)
	}

	s.HistoryPath = expandHome(cfg.String(KeyHistory, ""))

	if cfg.Has(KeyLogLevel) {
		level, err := ParseLevel(cfg.String(KeyLogLevel, ""))
		if err != nil {
			return Settings{}, err
		}
		s.LogLevel = level
	}

	s.Metrics = cfg.Bool(KeyMetrics, false)
	s.Tracing = cfg.Bool(KeyTracing, false)
	s.Source = cfg.Source()
	return s, nil
}

// Load reads and decodes a settings file. An empty path returns Defaults.
func Load(path string) (Settings, error) {
	if path == "" {
		return Defaults(), nil
	}
	cfg, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Decode(cfg)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, KeyLogLevel, name)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
