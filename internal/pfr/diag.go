package pfr

import "log/slog"

type Level int

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}
	return "WARNING"
}

// Sink receives non-fatal parse diagnostics. Nothing in the pipeline reads them back.
type Sink interface {
	Report(level Level, msg string)
}

// SlogSink forwards diagnostics to a slog.Logger. A nil Logger drops them.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Report(level Level, msg string) {
	if s.Logger == nil {
		return
	}
	if level == LevelError {
		s.Logger.Error(msg)
		return
	}
	s.Logger.Warn(msg)
}

type discard struct{}

func (discard) Report(Level, string) {}

func sinkOrDiscard(s Sink) Sink {
	if s == nil {
		return discard{}
	}
	return s
}
