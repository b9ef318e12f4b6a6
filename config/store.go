package config

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/kvesel/gatelog/core"
)

const (
	// DefaultLevel is the threshold used when none was ever set.
	DefaultLevel = core.InfoLevel
	// DefaultTruncateSize is the truncation size in bytes used when
	// none was ever set.
	DefaultTruncateSize = 4096
)

// Store holds the process-wide logging configuration. Level and
// truncation size are read atomically on every log call; setters are
// serialized only for the notice writer.
type Store struct {
	level    atomic.Int32
	truncate atomic.Int64

	mu     sync.Mutex
	notice io.Writer
}

// NewStore creates a Store initialized to the defaults: level info,
// truncation size 4096, notices to os.Stderr.
func NewStore() *Store {
	s := &Store{notice: os.Stderr}
	s.level.Store(int32(DefaultLevel))
	s.truncate.Store(DefaultTruncateSize)
	return s
}

// SetNoticeWriter redirects advisory and error reports. Passing nil
// restores os.Stderr.
func (s *Store) SetNoticeWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	s.notice = w
}

// Level returns the current minimum level.
func (s *Store) Level() core.Level {
	return core.Level(s.level.Load())
}

// SetLevel sets the minimum level. Ranks outside the defined set are
// rejected with the store unchanged.
func (s *Store) SetLevel(l core.Level) error {
	if !l.Valid() {
		return s.reject("invalid log level %d", int(l))
	}
	s.level.Store(int32(l))
	return nil
}

// SetLevelName sets the minimum level by name via the registry.
// Unrecognized names are rejected with the store unchanged.
func (s *Store) SetLevelName(name string) error {
	l, ok := core.ParseLevel(name)
	if !ok {
		return s.reject("invalid log level %q", name)
	}
	s.level.Store(int32(l))
	return nil
}

// SetLevelNum sets the minimum level from a legacy integer rank. The
// rank is translated through the registry before storage and a
// deprecation advisory is written on every call. Integers outside
// [-1, 7] are rejected with the store unchanged.
func (s *Store) SetLevelNum(n int) error {
	name, ok := core.LevelName(n)
	if !ok {
		return s.reject("invalid log level %d", n)
	}
	s.notef("gatelog: integer log levels are deprecated, use %q instead of %d", name, n)
	s.level.Store(int32(n))
	return nil
}

// Set accepts a level name, a core.Level, or a legacy integer rank,
// routing to the matching typed setter. Any other type is invalid
// input: the store is unchanged and an error is reported.
func (s *Store) Set(v any) error {
	switch val := v.(type) {
	case core.Level:
		return s.SetLevel(val)
	case string:
		return s.SetLevelName(val)
	case int:
		return s.SetLevelNum(val)
	case int8:
		return s.SetLevelNum(int(val))
	case int16:
		return s.SetLevelNum(int(val))
	case int32:
		return s.SetLevelNum(int(val))
	case int64:
		return s.SetLevelNum(int(val))
	default:
		return s.reject("invalid log level value of type %T", v)
	}
}

// TruncateSize returns the current truncation size in bytes.
func (s *Store) TruncateSize() int {
	return int(s.truncate.Load())
}

// SetTruncateSize stores the truncation size verbatim. No range is
// enforced; zero and negative values are forwarded to the backend
// as-is and their meaning is backend-defined.
func (s *Store) SetTruncateSize(n int) {
	s.truncate.Store(int64(n))
}

// reject reports invalid input to the notice writer and returns the
// same message as an error. The store is never modified on this path.
func (s *Store) reject(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	s.notef("gatelog: %v", err)
	return err
}

func (s *Store) notef(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.notice, format+"\n", args...)
}
