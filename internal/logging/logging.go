// Package logging builds the slog loggers used across itimer.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	CompPoller = "poller"
	CompTick   = "tick"
	CompCLI    = "cli"
)

type Options struct {
	Level string
	// File, when set, receives log output instead of Fallback.
	File     string
	Fallback io.Writer
}

// New returns a text logger and a closer for the log file, if one was opened.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = opts.Fallback
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	if out == nil || out == io.Discard {
		return slog.New(slog.DiscardHandler), closer, nil
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), closer, nil
}

func ParseLevel(raw string) (slog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", raw, err)
	}
	return level, nil
}

func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(slog.String("component", component))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
