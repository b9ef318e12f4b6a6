package core

import (
	"os"
	"runtime"
	"strings"
)

// Callsite describes the origin of a single log call. It is captured
// fresh per call and handed to the backend together with the message.
type Callsite struct {
	Module   string
	Function string
	Line     int
	PID      int
	Defined  bool
}

// Capture resolves the call site skip frames above Capture itself
// (skip=1 reports Capture's direct caller). The process id is always
// filled in, even when frame resolution fails.
func Capture(skip int) Callsite {
	site := Callsite{PID: os.Getpid()}

	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return site
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return site
	}

	site.Module, site.Function = splitFuncName(fn.Name())
	site.Line = line
	site.Defined = true
	return site
}

// splitFuncName splits a fully qualified function name such as
// "example.com/mod/pkg.(*T).Method" into the package path and the
// function part. Dots may appear in the host portion of the package
// path but never after its last slash.
func splitFuncName(full string) (module, function string) {
	slash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[slash+1:], '.')
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	return full[:dot], full[dot+1:]
}
