package logger

import (
	"errors"

	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

// ErrNoBackend is returned by pass-through operations on a Logger
// built without a backend.
var ErrNoBackend = errors.New("gatelog: no backend configured")

// Pass-through operations forwarded verbatim to the backend.

// StartConsoleTrace enables console tracing with a filter.
func (l *Logger) StartConsoleTrace(filter backend.Filter) (backend.TraceID, error) {
	if l.backend == nil {
		return 0, ErrNoBackend
	}
	return l.backend.StartConsoleTrace(filter)
}

// StartFileTrace enables file tracing with a filter and a minimum
// level.
func (l *Logger) StartFileTrace(path string, filter backend.Filter, level core.Level) (backend.TraceID, error) {
	if l.backend == nil {
		return 0, ErrNoBackend
	}
	return l.backend.StartFileTrace(path, filter, level)
}

// StopTrace stops an active trace.
func (l *Logger) StopTrace(id backend.TraceID) error {
	if l.backend == nil {
		return ErrNoBackend
	}
	return l.backend.StopTrace(id)
}

// ClearTraces stops all active traces.
func (l *Logger) ClearTraces() error {
	if l.backend == nil {
		return ErrNoBackend
	}
	return l.backend.ClearTraces()
}

// Status reports the backend's current handlers and their levels.
func (l *Logger) Status() []backend.HandlerStatus {
	if l.backend == nil {
		return nil
	}
	return l.backend.Status()
}

// HandlerLevel returns a named backend handler's level.
func (l *Logger) HandlerLevel(name string) (core.Level, bool) {
	if l.backend == nil {
		return 0, false
	}
	return l.backend.HandlerLevel(name)
}

// SetHandlerLevel sets a named backend handler's level, optionally at
// a nesting indent.
func (l *Logger) SetHandlerLevel(name string, level core.Level, indent int) error {
	if l.backend == nil {
		return ErrNoBackend
	}
	return l.backend.SetHandlerLevel(name, level, indent)
}

// ErrnoText translates a POSIX error code to text.
func (l *Logger) ErrnoText(code int) string {
	if l.backend == nil {
		return ""
	}
	return l.backend.ErrnoText(code)
}
