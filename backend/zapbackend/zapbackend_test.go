package zapbackend

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvesel/gatelog/backend"
	"github.com/kvesel/gatelog/core"
)

func testSite() core.Callsite {
	return core.Callsite{
		Module:   "example.com/app/web",
		Function: "handleRequest",
		Line:     42,
		PID:      os.Getpid(),
		Defined:  true,
	}
}

func newBuffered(t *testing.T) (*Backend, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b := New(Config{Writer: &buf, Encoding: EncodingJSON})
	t.Cleanup(func() { _ = b.Close() })
	return b, &buf
}

func TestDispatchLog(t *testing.T) {
	b, buf := newBuffered(t)

	b.DispatchLog(core.InfoLevel, testSite(), "hello %s", []any{"world"}, 0)

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, `"severity":"info"`)
	assert.Contains(t, out, `"module":"example.com/app/web"`)
	assert.Contains(t, out, `"function":"handleRequest"`)
	assert.Contains(t, out, `"line":42`)
	assert.Contains(t, out, `"pid":`)
}

func TestDispatchLog_Truncation(t *testing.T) {
	b, buf := newBuffered(t)

	b.DispatchLog(core.InfoLevel, testSite(), strings.Repeat("x", 100), nil, 10)
	assert.Contains(t, buf.String(), `"msg":"xxxxxxxxxx"`)
	assert.NotContains(t, buf.String(), strings.Repeat("x", 11))

	// Zero size disables truncation.
	buf.Reset()
	b.DispatchLog(core.InfoLevel, testSite(), strings.Repeat("y", 100), nil, 0)
	assert.Contains(t, buf.String(), strings.Repeat("y", 100))
}

func TestDispatchLog_HandlerThreshold(t *testing.T) {
	b, buf := newBuffered(t)
	require.NoError(t, b.SetHandlerLevel(DefaultHandlerName, core.WarningLevel, 0))

	b.DispatchLog(core.NoticeLevel, testSite(), "filtered", nil, 0)
	assert.Empty(t, buf.String())

	b.DispatchLog(core.WarningLevel, testSite(), "admitted", nil, 0)
	assert.Contains(t, buf.String(), "admitted")
}

func TestDispatchLog_InvalidLevel(t *testing.T) {
	b, buf := newBuffered(t)

	b.DispatchLog(core.NoneLevel, testSite(), "nope", nil, 0)
	b.DispatchLog(core.Level(42), testSite(), "nope", nil, 0)
	assert.Empty(t, buf.String())
}

func TestRuntimeMask(t *testing.T) {
	b, _ := newBuffered(t)

	assert.Equal(t, DefaultRuntimeMask, b.RuntimeMask())
	b.SetRuntimeMask(0b10)
	assert.Equal(t, 0b10, b.RuntimeMask())
}

func TestHandlers(t *testing.T) {
	b, _ := newBuffered(t)

	var second bytes.Buffer
	require.NoError(t, b.AddHandler("audit", &second, core.ErrorLevel))
	require.Error(t, b.AddHandler("audit", &second, core.ErrorLevel), "duplicate name")

	lvl, ok := b.HandlerLevel("audit")
	require.True(t, ok)
	assert.Equal(t, core.ErrorLevel, lvl)

	_, ok = b.HandlerLevel("missing")
	assert.False(t, ok)

	require.NoError(t, b.SetHandlerLevel("audit", core.CriticalLevel, 2))
	require.Error(t, b.SetHandlerLevel("missing", core.InfoLevel, 0))
	require.Error(t, b.SetHandlerLevel("audit", core.Level(42), 0))

	status := b.Status()
	require.Len(t, status, 2)
	assert.Equal(t, backend.HandlerStatus{Name: "audit", Level: core.CriticalLevel, Indent: 2}, status[0])
	assert.Equal(t, DefaultHandlerName, status[1].Name)

	// The audit handler only sees critical and above.
	b.DispatchLog(core.ErrorLevel, testSite(), "too low for audit", nil, 0)
	assert.Empty(t, second.String())
	b.DispatchLog(core.CriticalLevel, testSite(), "audited", nil, 0)
	assert.Contains(t, second.String(), "audited")

	require.NoError(t, b.RemoveHandler("audit"))
	require.Error(t, b.RemoveHandler("audit"))
}

func TestFileTrace(t *testing.T) {
	b, _ := newBuffered(t)
	path := filepath.Join(t.TempDir(), "trace.log")

	id, err := b.StartFileTrace(path, func(level core.Level, msg string) bool {
		return strings.Contains(msg, "wanted")
	}, core.InfoLevel)
	require.NoError(t, err)

	b.DispatchLog(core.InfoLevel, testSite(), "wanted line", nil, 0)
	b.DispatchLog(core.InfoLevel, testSite(), "other line", nil, 0)
	b.DispatchLog(core.DebugLevel, testSite(), "wanted but below trace level", nil, 0)

	require.NoError(t, b.StopTrace(id))
	require.Error(t, b.StopTrace(id), "already stopped")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wanted line")
	assert.NotContains(t, string(data), "other line")
	assert.NotContains(t, string(data), "below trace level")
}

func TestFileTrace_InvalidLevel(t *testing.T) {
	b, _ := newBuffered(t)
	_, err := b.StartFileTrace(filepath.Join(t.TempDir(), "t.log"), nil, core.Level(42))
	require.Error(t, err)
}

func TestClearTraces(t *testing.T) {
	b, _ := newBuffered(t)
	dir := t.TempDir()

	_, err := b.StartFileTrace(filepath.Join(dir, "a.log"), nil, core.DebugLevel)
	require.NoError(t, err)
	_, err = b.StartFileTrace(filepath.Join(dir, "b.log"), nil, core.DebugLevel)
	require.NoError(t, err)

	require.NoError(t, b.ClearTraces())

	// All traces gone: dispatch writes to neither file.
	b.DispatchLog(core.InfoLevel, testSite(), "after clear", nil, 0)
	for _, name := range []string{"a.log", "b.log"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Empty(t, string(data))
	}
}

func TestErrnoText(t *testing.T) {
	b, _ := newBuffered(t)

	assert.NotEmpty(t, b.ErrnoText(2)) // ENOENT
	assert.Contains(t, b.ErrnoText(0), "unknown error")
	assert.Contains(t, b.ErrnoText(-1), "unknown error")
}
