package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text slog logger on stderr; debug lowers the level to Debug.
func NewLogger(debug bool) *slog.Logger {
	return New(os.Stderr, debug)
}

func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
