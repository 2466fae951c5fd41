// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLevel is used when no level, or an unknown one, is given.
const DefaultLevel = slog.LevelWarn

func levelFromString(s string) (l slog.Level, ok bool) {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return slog.LevelDebug, true
	case "info", "inf":
		return slog.LevelInfo, true
	case "warn", "wrn":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	default:
		return DefaultLevel, false
	}
}

// ValidLevel reports whether s names a log level.
func ValidLevel(s string) bool {
	_, ok := levelFromString(s)
	return ok
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	loglevel, _ := levelFromString(level)
	// slog's text handler writes time, level, msg, then attributes
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: loglevel}))
}

// Init installs a text logger writing to w as the slog default.
func Init(w io.Writer, level string) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}

// InitFile installs a text logger appending to the file at path, creating
// its directory if needed. The caller closes the returned file.
func InitFile(path, level string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	Init(logFile, level)
	return logFile, nil
}
