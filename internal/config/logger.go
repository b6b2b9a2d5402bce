package config

import (
	"io"
	"log/slog"
)

// NewLogger builds a slog.Logger writing to w with the configured level and
// format. An invalid level falls back to info; Validate reports it.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, err := cfg.level()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
