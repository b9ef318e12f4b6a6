package zapbackend

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

// AddHandler attaches a named handler writing to w with the given
// threshold. Adding an existing name is an error.
func (b *Backend) AddHandler(name string, w io.Writer, level core.Level) error {
	if !level.Valid() {
		return fmt.Errorf("invalid handler level %d", int(level))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.handlers[name]; ok {
		return fmt.Errorf("handler %q already exists", name)
	}

	ws := zapcore.AddSync(w)
	b.handlers[name] = &handlerEntry{
		name:  name,
		level: level,
		lg:    newZapLogger(ws, b.encoding),
		ws:    ws,
	}
	return nil
}

// RemoveHandler detaches a named handler.
func (b *Backend) RemoveHandler(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.handlers[name]; !ok {
		return fmt.Errorf("no handler %q", name)
	}
	delete(b.handlers, name)
	return nil
}

// Status reports all handlers sorted by name.
func (b *Backend) Status() []backend.HandlerStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]backend.HandlerStatus, 0, len(b.handlers))
	for _, h := range b.handlers {
		out = append(out, backend.HandlerStatus{
			Name:   h.name,
			Level:  h.level,
			Indent: h.indent,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HandlerLevel returns a named handler's threshold.
func (b *Backend) HandlerLevel(name string) (core.Level, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h, ok := b.handlers[name]
	if !ok {
		return 0, false
	}
	return h.level, true
}

// SetHandlerLevel sets a named handler's threshold. The indent is
// kept for status display only.
func (b *Backend) SetHandlerLevel(name string, level core.Level, indent int) error {
	if !level.Valid() {
		return fmt.Errorf("invalid handler level %d", int(level))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	h, ok := b.handlers[name]
	if !ok {
		return fmt.Errorf("no handler %q", name)
	}
	h.level = level
	h.indent = indent
	return nil
}
