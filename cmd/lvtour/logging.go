package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the process logger on w from the log section.
func newLogger(w io.Writer, cfg LogConfig) (*slog.Logger, error) {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch cfg.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrBadConfig, cfg.Format)
	}
}
