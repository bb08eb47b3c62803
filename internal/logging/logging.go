// Package logging builds the slog logger used by the command line tools.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w, at Debug level when verbose
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
