package log

// WrappedLogger wraps a user provided Logger, defaulting to one which discards everything, and exposes a method for
// each level the deque logs at.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a WrappedLogger for a given inputted Logger. If logger is nil then assign the nopLogger.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Tracef logs the provided information at the trace level, used for one-off allocations.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.Log(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level, used when the block directory grows.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.Log(LevelDebug, format, args...)
}

// Warnf logs the provided information at the warn level, used for cleanup failures which aren't returned.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.Log(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.Log(LevelError, format, args...)
}
