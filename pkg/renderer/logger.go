package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scifi6546/ray-tracing/pkg/core"
)

// slogLogger implements core.Logger on top of a structured logger
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts l to core.Logger. Messages are logged at info level
// with trailing newlines removed. A nil l discards everything.
func NewSlogLogger(l *slog.Logger) core.Logger {
	if l == nil {
		l = NewNopLogger()
	}
	return &slogLogger{logger: l}
}

// NewDefaultLogger creates a logger writing through slog.Default
func NewDefaultLogger() core.Logger {
	return NewSlogLogger(slog.Default())
}

func (s *slogLogger) Printf(format string, args ...interface{}) {
	if !s.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	s.logger.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// nopHandler is a slog.Handler that discards all records
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNopLogger creates a structured logger that discards all output
func NewNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
