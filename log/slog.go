package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger is a Logger which forwards formatted messages to a 'slog.Logger'.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger backed by the given 'slog.Logger', a nil logger uses 'slog.Default()'.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogLogger{logger: logger}
}

// Log formats the message and emits it at the 'slog' level closest to level.
func (s SlogLogger) Log(level Level, format string, args ...any) {
	lvl := level.slogLevel()

	if !s.logger.Enabled(context.Background(), lvl) {
		return
	}

	s.logger.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}
