package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog.Logger configured for the given service name.
func New(service string, level slog.Level, w io.Writer) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", service)
}

// Open returns a logger writing to path, or to stderr when path is empty.
// The returned close function is never nil.
func Open(service string, level slog.Level, path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(service, level, os.Stderr), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(service, level, f), f.Close, nil
}
