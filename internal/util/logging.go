// Package util provides logging setup, file system paths and small helpers
// shared by the planner packages.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the process logger. It discards output until InitLogger runs,
// because the TUI owns the terminal.
var Logger = log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: true})

// InitLogger points Logger at path. An empty path keeps logs discarded. The
// returned closer releases the file.
func InitLogger(path, level string) (io.Closer, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	if path == "" {
		Logger.SetLevel(lvl)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "ecoweek",
	})
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.Error(context, "err", err)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
