// Package util provides common utilities including logging setup,
// file system paths, and small numeric helpers.
package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		slog.Error(context, "error", err)
	}
}

// NewLogger builds a text logger writing to w. A nil writer discards
// everything, which is what the TUI wants when no log file is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenLogFile opens path for appending. The parent directory must
// already exist; LogFile creates the default one.
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
