package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/simp-lee/logger"
)

// SetupLogger builds a *logger.Logger from LogConfig and installs it as the
// process-wide slog default. Callers own the returned logger and must Close
// it on shutdown. Unknown level names degrade to "info" and unknown formats
// to "custom" rather than failing startup.
func SetupLogger(cfg *LogConfig) (*logger.Logger, error) {
	opts := BuildLoggerOpts(cfg)
	if opts == nil {
		return nil, errors.New("log config is nil")
	}

	log, err := logger.New(opts...)
	if err != nil {
		return nil, err
	}

	log.SetDefault()
	return log, nil
}

// BuildLoggerOpts translates a LogConfig into logger options. A nil config
// yields nil.
func BuildLoggerOpts(cfg *LogConfig) []logger.Option {
	if cfg == nil {
		return nil
	}

	level := parseLevel(cfg.Level)

	// Console output format
	var format logger.OutputFormat
	switch strings.ToLower(cfg.Format) {
	case "text":
		format = logger.FormatText
	case "json":
		format = logger.FormatJSON
	default:
		format = logger.FormatCustom
	}

	// Color is on unless explicitly disabled
	colorEnabled := true
	if cfg.Color != nil {
		colorEnabled = *cfg.Color
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithMiddleware(logger.ContextMiddleware()),
		logger.WithConsoleFormat(format),
		logger.WithConsoleColor(colorEnabled),
	}

	// File output with rotation, only when a path is configured
	if cfg.FilePath != "" {
		opts = append(opts, logger.WithFilePath(cfg.FilePath))
		opts = append(opts, logger.WithFileFormat(format))

		if cfg.MaxSizeMB > 0 {
			opts = append(opts, logger.WithMaxSizeMB(cfg.MaxSizeMB))
		}
		if cfg.RetentionDays > 0 {
			opts = append(opts, logger.WithRetentionDays(cfg.RetentionDays))
		}
		if cfg.MaxBackups > 0 {
			opts = append(opts, logger.WithMaxBackups(cfg.MaxBackups))
		}
		if cfg.CompressRotated != nil {
			opts = append(opts, logger.WithCompressRotated(*cfg.CompressRotated))
		}
	}

	return opts
}

// parseLevel maps a config level name to slog.Level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
