package benchmark

import (
	"fmt"
	"io"
	"testing"

	"github.com/kvesel/gatelog/backend/zapbackend"
	"github.com/kvesel/gatelog/config"
	"github.com/kvesel/gatelog/core"
	"github.com/kvesel/gatelog/logger"
)

func newGatedLogger(threshold core.Level, mask int) *logger.Logger {
	store := config.NewStore()
	store.SetNoticeWriter(io.Discard)
	if err := store.SetLevel(threshold); err != nil {
		panic(err)
	}
	return logger.NewBuilder().
		WithBackend(newNoopBackend(mask)).
		WithStore(store).
		Build()
}

// The no-op fast path: calls below the configured threshold must cost
// one atomic load and an integer comparison.
func BenchmarkGateRejected(b *testing.B) {
	l := newGatedLogger(core.InfoLevel, 0xff)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debugf("debug message %d", i)
	}
}

func BenchmarkGateRejected_Lazy(b *testing.B) {
	l := newGatedLogger(core.InfoLevel, 0xff)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.DebugFn(func() string {
			return fmt.Sprintf("debug message %d", i)
		})
	}
}

func BenchmarkGateAdmitted(b *testing.B) {
	l := newGatedLogger(core.DebugLevel, 0xff)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debugf("debug message %d", i)
	}
}

// The producer never runs when the runtime mask excludes the level.
func BenchmarkLazyMaskedOut(b *testing.B) {
	l := newGatedLogger(core.DebugLevel, 0)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.DebugFn(func() string {
			return fmt.Sprintf("debug message %d", i)
		})
	}
}

func BenchmarkLazyAdmitted(b *testing.B) {
	l := newGatedLogger(core.DebugLevel, 0xff)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.DebugFn(func() string {
			return fmt.Sprintf("debug message %d", i)
		})
	}
}

// Full pipeline through the zap backend.
func BenchmarkZapBackendDispatch(b *testing.B) {
	store := config.NewStore()
	store.SetNoticeWriter(io.Discard)
	be := zapbackend.New(zapbackend.Config{
		Writer:   io.Discard,
		Encoding: zapbackend.EncodingJSON,
	})
	defer be.Close()

	l := logger.NewBuilder().WithBackend(be).WithStore(store).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Infof("info message %d", i)
	}
}
