package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvpart/internal/config"
)

// newLogger builds the stderr logger; libraries never log, only the CLI does.
func newLogger(w io.Writer, cfg config.LoggingConfig) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler), nil
}
