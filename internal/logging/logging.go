package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New opens (or creates) a JSON log file at path and returns a logger writing
// to it. The TUI owns stdout, so logs never go there. On failure the logger
// discards output rather than failing startup.
func New(path string) *slog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard()
	}
	return slog.New(slog.NewJSONHandler(f, nil))
}

// Discard returns a logger that drops every record. Used in tests and as the
// fallback when the log file cannot be opened.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
