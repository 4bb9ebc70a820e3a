package logger

import (
	"io"
	"log/slog"
	"os"
	ports "user-collection-service/internal/domain/ports/output"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envTest  = "test"
)

var _ ports.Logger = (*Logger)(nil)

type Logger struct {
	*slog.Logger
}

// New builds a logger for env: text at debug level for local and dev, JSON at
// info level for prod, discarded output for test.
func New(env string) *Logger {
	return newWithWriter(env, os.Stdout)
}

func newWithWriter(env string, w io.Writer) *Logger {
	var h slog.Handler
	switch env {
	case envLocal, envDev:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envTest:
		h = slog.NewTextHandler(io.Discard, nil)
	default:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(h)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
