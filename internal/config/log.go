package config

import (
	"io"
	"log/slog"
	"os"
)

// SetupLog installs the default slog logger described by cfg.
func SetupLog(cfg LogConfig) {
	slog.SetDefault(NewLogger(cfg, os.Stderr))
}

// NewLogger builds a logger writing to w. Settings are validated by
// Config.Validate, so unknown values fall back to info/text here.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
