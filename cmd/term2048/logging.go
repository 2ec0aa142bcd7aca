package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
)

// newLogger builds the process logger. Logs go to the configured file when
// set. Otherwise line mode logs to stderr and the prompt UI drops them so
// they cannot tear the screen.
func newLogger(cfg config.LogConfig, mode config.UIMode) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	switch {
	case cfg.File != "":
		path := config.ExpandHome(cfg.File)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	case mode == config.UIModeTUI:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
		Level:           level,
	})
	return logger, closeFn, nil
}
