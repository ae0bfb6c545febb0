package util

import (
	"log/slog"
	"strings"
)

// ParseLogLevel maps debug, info, warn and error to slog levels. Anything
// else is treated as error.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
