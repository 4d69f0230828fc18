package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// Tracer implements tracing.Trace on top of a slog.Logger, routing the
// detection library's traces into the command's log.
type Tracer struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  tracing.TraceLevel
	attrs  []any
}

// NewTracer creates a Tracer writing through logger. The trace level follows
// the logger: debug traces are emitted only if the logger is enabled for
// slog.LevelDebug.
func NewTracer(logger *slog.Logger) *Tracer {
	level := tracing.LevelInfo
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		level = tracing.LevelDebug
	}
	return &Tracer{logger: logger, level: level}
}

// Install makes t the tracer returned by tracing.Select for every key.
func (t *Tracer) Install() {
	tracing.SetTraceSelector(selector{t})
}

type selector struct {
	t *Tracer
}

func (s selector) Select(key string) tracing.Trace {
	return s.t.P("tracer", key)
}

// P is part of interface Trace
func (t *Tracer) P(key string, val any) tracing.Trace {
	t.mu.RLock()
	defer t.mu.RUnlock()
	attrs := make([]any, 0, len(t.attrs)+2)
	attrs = append(attrs, t.attrs...)
	attrs = append(attrs, key, val)
	return &Tracer{logger: t.logger, level: t.level, attrs: attrs}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...any) {
	t.output(tracing.LevelDebug, slog.LevelDebug, s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...any) {
	t.output(tracing.LevelInfo, slog.LevelInfo, s, args...)
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...any) {
	t.output(tracing.LevelError, slog.LevelError, s, args...)
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.level = l
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.level
}

// SetOutput is part of interface Trace
func (t *Tracer) SetOutput(writer io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	t.logger = slog.New(slog.NewTextHandler(writer, opts))
}

func (t *Tracer) output(tl tracing.TraceLevel, sl slog.Level, s string, args ...any) {
	t.mu.RLock()
	logger, level, attrs := t.logger, t.level, t.attrs
	t.mu.RUnlock()
	if level < tl {
		return
	}
	logger.Log(context.Background(), sl, fmt.Sprintf(s, args...), attrs...)
}
