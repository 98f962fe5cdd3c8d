// Package logger installs the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelFromString parses a level name. Short aliases are accepted.
// Unknown names map to info with ok set to false.
func LevelFromString(s string) (l slog.Level, ok bool) {
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
		return slog.LevelInfo, false
	}
}

// InitLogger appends text logs to the file at path and makes that logger
// the default. The returned closer releases the file.
func InitLogger(path, level string) (io.Closer, error) {
	loglevel, ok := LevelFromString(level)
	if !ok && level != "" {
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	SetDefault(logFile, loglevel)

	return logFile, nil
}

// SetDefault installs a text handler writing to w as the default logger.
func SetDefault(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
