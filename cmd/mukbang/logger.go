package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the program logger. With a log file it writes debug
// output there; otherwise it writes to stderr, unless the TUI owns the
// terminal, in which case logs are dropped.
func newLogger(path string, tuiActive bool) (*log.Logger, func(), error) {
	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
		level             = log.InfoLevel
	)

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
		level = log.DebugLevel
	case tuiActive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "mukbang",
		Level:           level,
	})
	return logger, closeFn, nil
}
