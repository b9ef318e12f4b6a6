package zapbackend

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

// StartConsoleTrace attaches a trace writing every admitted line to
// stdout, restricted only by the filter.
func (b *Backend) StartConsoleTrace(filter backend.Filter) (backend.TraceID, error) {
	return b.addTrace(&traceEntry{
		filter: filter,
		level:  core.DebugLevel,
		lg:     newZapLogger(zapcore.AddSync(os.Stdout), b.encoding),
	})
}

// StartFileTrace attaches a trace appending to the file at path,
// restricted by the filter and the minimum level.
func (b *Backend) StartFileTrace(path string, filter backend.Filter, level core.Level) (backend.TraceID, error) {
	if !level.Valid() {
		return 0, fmt.Errorf("invalid trace level %d", int(level))
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}

	return b.addTrace(&traceEntry{
		filter: filter,
		level:  level,
		lg:     newZapLogger(zapcore.AddSync(f), b.encoding),
		closer: f,
	})
}

// StopTrace stops one active trace and closes its destination.
func (b *Backend) StopTrace(id backend.TraceID) error {
	b.mu.Lock()
	tr, ok := b.traces[id]
	if ok {
		delete(b.traces, id)
	}
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("no trace %d", int(id))
	}
	if tr.closer != nil {
		return tr.closer.Close()
	}
	return nil
}

// ClearTraces stops all active traces.
func (b *Backend) ClearTraces() error {
	b.mu.Lock()
	traces := b.traces
	b.traces = make(map[backend.TraceID]*traceEntry)
	b.mu.Unlock()

	var err error
	for _, tr := range traces {
		if tr.closer != nil {
			err = multierr.Append(err, tr.closer.Close())
		}
	}
	return err
}

func (b *Backend) addTrace(tr *traceEntry) (backend.TraceID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.traces[id] = tr
	return id, nil
}
