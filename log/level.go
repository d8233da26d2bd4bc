package log

import "log/slog"

// Level is a type alias which is used to indicate the verbosity of an log statement.
type Level uint8

const (
	// LevelTrace is the most verbose log level including finer grained informational events than debug level.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained informational events such as block directory growth.
	LevelDebug

	// LevelInfo includes informational messages that highlight the progress of events in the library at a
	// course-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events, for example an element which could not
	// be destroyed whilst rolling back a failed construction.
	LevelWarning

	// LevelError includes error events which may still allow the library to continue running.
	LevelError

	// LevelPanic includes errors events which should lead to a panic. This level will only be used in the most severe
	// of cases.
	LevelPanic
)

// slogLevel maps the level onto the closest 'slog' level, trace and panic don't exist in 'slog' so they're placed
// either side of debug/error.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}
