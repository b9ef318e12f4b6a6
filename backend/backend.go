package backend

import "github.com/kvesel/gatelog/core"

// TraceID identifies an active trace started through the backend.
type TraceID int

// Filter decides whether a traced log line is of interest. Filters
// are owned and interpreted by the backend; the core forwards them
// verbatim. A nil Filter matches everything.
type Filter func(level core.Level, msg string) bool

// HandlerStatus describes one named backend handler for status
// reporting.
type HandlerStatus struct {
	Name   string
	Level  core.Level
	Indent int
}

// Backend is the single boundary to the external logging system.
type Backend interface {
	// DispatchLog ingests one admitted log line together with its
	// metadata envelope and the configured truncation size. It has no
	// observable return contract; failures are the backend's problem.
	DispatchLog(level core.Level, site core.Callsite, format string, args []any, truncSize int)

	// RuntimeMask returns the live enabled-levels bitmask consulted
	// before a deferred message producer is evaluated.
	RuntimeMask() int

	// StartConsoleTrace enables console tracing with a filter.
	StartConsoleTrace(filter Filter) (TraceID, error)

	// StartFileTrace enables file tracing with a filter and a minimum
	// level.
	StartFileTrace(path string, filter Filter, level core.Level) (TraceID, error)

	// StopTrace stops one active trace.
	StopTrace(id TraceID) error

	// ClearTraces stops all active traces.
	ClearTraces() error

	// Status reports the current handlers and their levels.
	Status() []HandlerStatus

	// HandlerLevel returns a named handler's level, or false if the
	// handler does not exist.
	HandlerLevel(name string) (core.Level, bool)

	// SetHandlerLevel sets a named handler's level, with an optional
	// nesting indent used for status display.
	SetHandlerLevel(name string, level core.Level, indent int) error

	// ErrnoText translates a POSIX error code to text.
	ErrnoText(code int) string
}
