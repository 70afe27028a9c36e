package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInvalidLogFormat reports an unknown --log-format value.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// newLogger creates a logger writing to w. Unknown levels fall back to info.
// It does not set the global logger.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case logFormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidLogFormat, formatStr, logFormatText, logFormatJSON)
	}
}

// logLevel returns the level name for the verbose setting.
func logLevel(verbose bool) string {
	if verbose {
		return "debug"
	}
	return "info"
}
