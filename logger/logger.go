package logger

import (
	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/config"
	"github.com/kvesel/gatelog/core"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	backend    backend.Backend
	store      *config.Store
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	backend    backend.Backend
	store      *config.Store
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 3, // Default skip for core.Capture
	}
}

// WithBackend sets the backend. A Logger without a backend turns
// every call into a no-op.
func (b *Builder) WithBackend(be backend.Backend) *Builder {
	b.backend = be
	return b
}

// WithStore sets the configuration store consulted on every gating
// decision. Defaults to config.Default().
func (b *Builder) WithStore(s *config.Store) *Builder {
	b.store = s
	return b
}

// WithCallerSkip adjusts call-site capture for wrappers that add
// stack frames between the user and the Logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	store := b.store
	if store == nil {
		store = config.Default()
	}
	return &Logger{
		backend:    b.backend,
		store:      store,
		callerSkip: b.callerSkip,
	}
}

// shouldLog is the threshold gate: the call's rank must be at most
// the configured threshold's rank (lower rank = more severe). An
// unrecognized call level never logs; a threshold of NoneLevel (-1)
// admits nothing.
func (l *Logger) shouldLog(level core.Level) bool {
	if level < core.EmergencyLevel || level > core.DebugLevel {
		return false
	}
	return level <= l.store.Level()
}

// dispatch captures the call site and hands the line to the backend.
// The caller has already passed the threshold gate.
func (l *Logger) dispatch(level core.Level, format string, args []any) {
	if l.backend == nil {
		return
	}
	site := core.Capture(l.callerSkip)
	l.backend.DispatchLog(level, site, format, args, l.store.TruncateSize())
}

// dispatchFn is the runtime gate and resolver for deferred messages:
// the producer runs only when the call's rank ANDed with the
// backend's live mask is non-zero. A masked-out producer is never
// invoked.
func (l *Logger) dispatchFn(level core.Level, fn func() string) {
	if l.backend == nil || fn == nil {
		return
	}
	if int(level)&l.backend.RuntimeMask() == 0 {
		return
	}
	site := core.Capture(l.callerSkip)
	l.backend.DispatchLog(level, site, fn(), nil, l.store.TruncateSize())
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	if !l.shouldLog(level) {
		return
	}
	l.dispatch(level, format, args)
}

// LogFn logs a deferred message at the specified level
func (l *Logger) LogFn(level core.Level, fn func() string) {
	if !l.shouldLog(level) {
		return
	}
	l.dispatchFn(level, fn)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...any) {
	if !l.shouldLog(core.DebugLevel) {
		return
	}
	l.dispatch(core.DebugLevel, format, args)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	if !l.shouldLog(core.InfoLevel) {
		return
	}
	l.dispatch(core.InfoLevel, format, args)
}

// Noticef logs a formatted notice message
func (l *Logger) Noticef(format string, args ...any) {
	if !l.shouldLog(core.NoticeLevel) {
		return
	}
	l.dispatch(core.NoticeLevel, format, args)
}

// Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...any) {
	if !l.shouldLog(core.WarningLevel) {
		return
	}
	l.dispatch(core.WarningLevel, format, args)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	if !l.shouldLog(core.ErrorLevel) {
		return
	}
	l.dispatch(core.ErrorLevel, format, args)
}

// Criticalf logs a formatted critical message
func (l *Logger) Criticalf(format string, args ...any) {
	if !l.shouldLog(core.CriticalLevel) {
		return
	}
	l.dispatch(core.CriticalLevel, format, args)
}

// Alertf logs a formatted alert message
func (l *Logger) Alertf(format string, args ...any) {
	if !l.shouldLog(core.AlertLevel) {
		return
	}
	l.dispatch(core.AlertLevel, format, args)
}

// Emergencyf logs a formatted emergency message
func (l *Logger) Emergencyf(format string, args ...any) {
	if !l.shouldLog(core.EmergencyLevel) {
		return
	}
	l.dispatch(core.EmergencyLevel, format, args)
}

// DebugFn logs a deferred debug message
func (l *Logger) DebugFn(fn func() string) {
	if !l.shouldLog(core.DebugLevel) {
		return
	}
	l.dispatchFn(core.DebugLevel, fn)
}

// InfoFn logs a deferred info message
func (l *Logger) InfoFn(fn func() string) {
	if !l.shouldLog(core.InfoLevel) {
		return
	}
	l.dispatchFn(core.InfoLevel, fn)
}

// NoticeFn logs a deferred notice message
func (l *Logger) NoticeFn(fn func() string) {
	if !l.shouldLog(core.NoticeLevel) {
		return
	}
	l.dispatchFn(core.NoticeLevel, fn)
}

// WarningFn logs a deferred warning message
func (l *Logger) WarningFn(fn func() string) {
	if !l.shouldLog(core.WarningLevel) {
		return
	}
	l.dispatchFn(core.WarningLevel, fn)
}

// ErrorFn logs a deferred error message
func (l *Logger) ErrorFn(fn func() string) {
	if !l.shouldLog(core.ErrorLevel) {
		return
	}
	l.dispatchFn(core.ErrorLevel, fn)
}

// CriticalFn logs a deferred critical message
func (l *Logger) CriticalFn(fn func() string) {
	if !l.shouldLog(core.CriticalLevel) {
		return
	}
	l.dispatchFn(core.CriticalLevel, fn)
}

// AlertFn logs a deferred alert message
func (l *Logger) AlertFn(fn func() string) {
	if !l.shouldLog(core.AlertLevel) {
		return
	}
	l.dispatchFn(core.AlertLevel, fn)
}

// EmergencyFn logs a deferred emergency message. Note that rank 0
// ANDed with any mask is zero, so the runtime gate never admits a
// deferred emergency producer; use Emergencyf for eager messages.
func (l *Logger) EmergencyFn(fn func() string) {
	if !l.shouldLog(core.EmergencyLevel) {
		return
	}
	l.dispatchFn(core.EmergencyLevel, fn)
}
