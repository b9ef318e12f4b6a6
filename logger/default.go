package logger

import (
	"sync"

	"github.com/kvesel/gatelog/backend/zapbackend"
	"github.com/kvesel/gatelog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a zap console backend on stderr
	// and the shared configuration store.
	defaultLogger = NewBuilder().
		WithBackend(zapbackend.New(zapbackend.Config{})).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// Each replicates the gate-then-dispatch sequence instead of calling
// the method so that call-site capture lands on the user's frame.

// Logf logs a formatted message at the specified level using the default logger
func Logf(level core.Level, format string, args ...any) {
	l := Default()
	if !l.shouldLog(level) {
		return
	}
	l.dispatch(level, format, args)
}

// LogFn logs a deferred message at the specified level using the default logger
func LogFn(level core.Level, fn func() string) {
	l := Default()
	if !l.shouldLog(level) {
		return
	}
	l.dispatchFn(level, fn)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.DebugLevel) {
		return
	}
	l.dispatch(core.DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.InfoLevel) {
		return
	}
	l.dispatch(core.InfoLevel, format, args)
}

// Noticef logs a formatted notice message using the default logger
func Noticef(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.NoticeLevel) {
		return
	}
	l.dispatch(core.NoticeLevel, format, args)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.WarningLevel) {
		return
	}
	l.dispatch(core.WarningLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.ErrorLevel) {
		return
	}
	l.dispatch(core.ErrorLevel, format, args)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.CriticalLevel) {
		return
	}
	l.dispatch(core.CriticalLevel, format, args)
}

// Alertf logs a formatted alert message using the default logger
func Alertf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.AlertLevel) {
		return
	}
	l.dispatch(core.AlertLevel, format, args)
}

// Emergencyf logs a formatted emergency message using the default logger
func Emergencyf(format string, args ...any) {
	l := Default()
	if !l.shouldLog(core.EmergencyLevel) {
		return
	}
	l.dispatch(core.EmergencyLevel, format, args)
}

// DebugFn logs a deferred debug message using the default logger
func DebugFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.DebugLevel) {
		return
	}
	l.dispatchFn(core.DebugLevel, fn)
}

// InfoFn logs a deferred info message using the default logger
func InfoFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.InfoLevel) {
		return
	}
	l.dispatchFn(core.InfoLevel, fn)
}

// NoticeFn logs a deferred notice message using the default logger
func NoticeFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.NoticeLevel) {
		return
	}
	l.dispatchFn(core.NoticeLevel, fn)
}

// WarningFn logs a deferred warning message using the default logger
func WarningFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.WarningLevel) {
		return
	}
	l.dispatchFn(core.WarningLevel, fn)
}

// ErrorFn logs a deferred error message using the default logger
func ErrorFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.ErrorLevel) {
		return
	}
	l.dispatchFn(core.ErrorLevel, fn)
}

// CriticalFn logs a deferred critical message using the default logger
func CriticalFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.CriticalLevel) {
		return
	}
	l.dispatchFn(core.CriticalLevel, fn)
}

// AlertFn logs a deferred alert message using the default logger
func AlertFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.AlertLevel) {
		return
	}
	l.dispatchFn(core.AlertLevel, fn)
}

// EmergencyFn logs a deferred emergency message using the default logger
func EmergencyFn(fn func() string) {
	l := Default()
	if !l.shouldLog(core.EmergencyLevel) {
		return
	}
	l.dispatchFn(core.EmergencyLevel, fn)
}
