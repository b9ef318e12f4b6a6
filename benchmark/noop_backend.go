package benchmark

import (
	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

type noopBackend struct {
	mask int
}

func newNoopBackend(mask int) backend.Backend {
	return &noopBackend{mask: mask}
}

func (b *noopBackend) DispatchLog(_ core.Level, _ core.Callsite, format string, _ []any, _ int) {
	_ = len(format)
}

func (b *noopBackend) RuntimeMask() int { return b.mask }

func (b *noopBackend) StartConsoleTrace(backend.Filter) (backend.TraceID, error) { return 0, nil }

func (b *noopBackend) StartFileTrace(string, backend.Filter, core.Level) (backend.TraceID, error) {
	return 0, nil
}

func (b *noopBackend) StopTrace(backend.TraceID) error { return nil }

func (b *noopBackend) ClearTraces() error { return nil }

func (b *noopBackend) Status() []backend.HandlerStatus { return nil }

func (b *noopBackend) HandlerLevel(string) (core.Level, bool) { return 0, false }

func (b *noopBackend) SetHandlerLevel(string, core.Level, int) error { return nil }

func (b *noopBackend) ErrnoText(int) string { return "" }
