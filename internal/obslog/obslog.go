// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package obslog provides the small logging and fatal-abort surface shared
// by the explorer and automaton-construction packages: a zap-backed
// structured logger tagged with a per-query correlation id, and a Fatal
// helper that wraps spec.md section 7's "internal invariant violation"
// aborts with a stack trace via github.com/pkg/errors before panicking.
package obslog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Logger wraps a zap.SugaredLogger with a fixed correlation id, minted once
// when the Logger is created by New or Nop, so a caller that creates one
// Logger per query can separate the log lines of each query (SPEC_FULL.md
// section 7).
type Logger struct {
	id   uuid.UUID
	base *zap.SugaredLogger
}

// New returns a Logger backed by a new zap production logger. If zap fails
// to build one (it essentially never does with the default config), New
// falls back to zap's no-op logger rather than erroring: logging is
// observability, not a correctness dependency, so a construction failure
// here must never prevent a model-checking query from running.
func New() *Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{id: uuid.New(), base: z.Sugar()}
}

// Nop returns a Logger that discards everything, used as the zero-overhead
// default when a caller does not care about explorer/automaton diagnostics.
func Nop() *Logger {
	return &Logger{id: uuid.New(), base: zap.NewNop().Sugar()}
}

// QueryID returns the correlation id threaded through this Logger's lines.
func (l *Logger) QueryID() string { return l.id.String() }

// Debugf logs a low-volume progress line (state counts, worklist sizes).
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.base.Debugw(fmt.Sprintf(format, args...), "query", l.id.String())
}

// Warnf logs a coverability acceleration or other noteworthy-but-expected
// event.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.base.Warnw(fmt.Sprintf(format, args...), "query", l.id.String())
}

// Fatal wraps msg with a stack trace via github.com/pkg/errors and panics:
// the internal-invariant-violation path of spec.md section 7, "never
// expected in production".
func Fatal(msg string) {
	panic(errors.New(msg))
}

// Fatalf is Fatal with formatting.
func Fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
