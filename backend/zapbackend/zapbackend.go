package zapbackend

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

// Encodings for handler and trace output.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// DefaultRuntimeMask enables every rank bit.
const DefaultRuntimeMask = 0xff

// DefaultHandlerName is the name of the handler created by New.
const DefaultHandlerName = "default"

// Config holds construction options for a Backend.
type Config struct {
	// Writer for the default handler (default: os.Stderr).
	Writer io.Writer
	// Encoding is EncodingConsole (default) or EncodingJSON.
	Encoding string
	// Name of the default handler (default: DefaultHandlerName).
	Name string
}

// Backend implements backend.Backend on zap. Handlers and traces are
// guarded by mu; the runtime mask is a lone atomic so RuntimeMask
// stays cheap on the deferred-resolution path.
type Backend struct {
	mask     atomic.Int64
	encoding string

	mu       sync.RWMutex
	handlers map[string]*handlerEntry
	traces   map[backend.TraceID]*traceEntry
	nextID   backend.TraceID
}

type handlerEntry struct {
	name   string
	level  core.Level
	indent int
	lg     *zap.Logger
	ws     zapcore.WriteSyncer
}

type traceEntry struct {
	filter backend.Filter
	level  core.Level
	lg     *zap.Logger
	closer io.Closer
}

var _ backend.Backend = (*Backend)(nil)

// New creates a Backend with a single open handler. The handler
// admits every level; gating is the front's job, and per-handler
// thresholds are adjusted later via SetHandlerLevel.
func New(cfg Config) *Backend {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Encoding == "" {
		cfg.Encoding = EncodingConsole
	}
	if cfg.Name == "" {
		cfg.Name = DefaultHandlerName
	}

	b := &Backend{
		encoding: cfg.Encoding,
		handlers: make(map[string]*handlerEntry),
		traces:   make(map[backend.TraceID]*traceEntry),
	}
	b.mask.Store(DefaultRuntimeMask)

	ws := zapcore.AddSync(cfg.Writer)
	b.handlers[cfg.Name] = &handlerEntry{
		name:  cfg.Name,
		level: core.DebugLevel,
		lg:    newZapLogger(ws, cfg.Encoding),
		ws:    ws,
	}
	return b
}

// DispatchLog formats, truncates, and fans the line out to every
// handler and trace that admits its level.
func (b *Backend) DispatchLog(level core.Level, site core.Callsite, format string, args []any, truncSize int) {
	zlvl, ok := zapLevel(level)
	if !ok {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	msg = truncate(msg, truncSize)

	fields := []zap.Field{
		zap.String("severity", level.String()),
		zap.String("module", site.Module),
		zap.String("function", site.Function),
		zap.Int("line", site.Line),
		zap.Int("pid", site.PID),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, h := range b.handlers {
		if level > h.level {
			continue
		}
		if ce := h.lg.Check(zlvl, msg); ce != nil {
			ce.Write(fields...)
		}
	}
	for _, tr := range b.traces {
		if level > tr.level {
			continue
		}
		if tr.filter != nil && !tr.filter(level, msg) {
			continue
		}
		if ce := tr.lg.Check(zlvl, msg); ce != nil {
			ce.Write(fields...)
		}
	}
}

// RuntimeMask returns the live enabled-levels bitmask.
func (b *Backend) RuntimeMask() int {
	return int(b.mask.Load())
}

// SetRuntimeMask replaces the enabled-levels bitmask.
func (b *Backend) SetRuntimeMask(mask int) {
	b.mask.Store(int64(mask))
}

// Close syncs every handler and stops all traces.
func (b *Backend) Close() error {
	err := b.ClearTraces()

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers {
		// Sync on stderr-like writers fails harmlessly; keep the
		// first real error anyway.
		if serr := h.ws.Sync(); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

// newZapLogger builds a wide-open zap logger for one destination.
// Admission by level is decided by the Backend, not the core.
func newZapLogger(ws zapcore.WriteSyncer, encoding string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if encoding == EncodingJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	return zap.New(zapcore.NewCore(enc, ws, zapcore.DebugLevel))
}

// zapLevel maps a gatelog rank onto zap's coarser scale. Levels zap
// does not know collapse onto the nearest zap level; the original
// name travels in the severity field.
func zapLevel(l core.Level) (zapcore.Level, bool) {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel, true
	case core.InfoLevel, core.NoticeLevel:
		return zapcore.InfoLevel, true
	case core.WarningLevel:
		return zapcore.WarnLevel, true
	case core.ErrorLevel, core.CriticalLevel, core.AlertLevel, core.EmergencyLevel:
		return zapcore.ErrorLevel, true
	default:
		return 0, false
	}
}

// truncate cuts msg to size bytes. Zero or negative sizes disable
// truncation.
func truncate(msg string, size int) string {
	if size > 0 && len(msg) > size {
		return msg[:size]
	}
	return msg
}
