package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func removeTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}

func TestSlogLogger(t *testing.T) {
	var b bytes.Buffer

	l := NewSlogLogger(slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: removeTime,
	})))

	l.Log(LevelTrace, "zero allocation")
	l.Log(LevelDebug, "grew block directory from %d to %d blocks", 1, 3)
	l.Log(LevelWarning, "failed to destroy element %d", 4)

	require.Equal(t, `level=DEBUG msg="grew block directory from 1 to 3 blocks"
level=WARN msg="failed to destroy element 4"
`, b.String())
}

func TestSlogLoggerNilUsesDefault(t *testing.T) {
	l := NewSlogLogger(nil)
	require.Equal(t, slog.Default(), l.logger)
}
