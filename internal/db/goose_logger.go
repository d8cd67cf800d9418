package db

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// gooseLogger routes goose progress output into slog at debug level.
type gooseLogger struct {
	l *slog.Logger
}

func newGooseLogger(l *slog.Logger) gooseLogger {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return gooseLogger{l: l.With("component", "migrate")}
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is called by goose for unrecoverable errors. goose.Up also returns
// them, so this only records the message.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
