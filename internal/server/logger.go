// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// parseLogLevel maps the configured level name to a slog level. Unknown
// names fall back to info rather than failing startup.
func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// setupLogger installs the global slog logger: JSON for log aggregation,
// tinted text for terminals.
func setupLogger(levelName, format string) {
	level := parseLogLevel(levelName)

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}

	slog.SetDefault(slog.New(handler))
}
