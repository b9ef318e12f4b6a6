// Package zapbackend implements the backend.Backend boundary on top
// of go.uber.org/zap.
//
// A Backend owns a set of named handlers, each a zap logger writing
// to its own destination with its own severity threshold, plus any
// number of dynamically attached traces (console or file) with an
// optional filter. Thresholds use gatelog's inverted ordering, so the
// notice level survives even though zap itself has no such level; the
// zap cores are left wide open and admission is decided here.
//
// Each dispatched line carries the metadata envelope as structured
// fields: severity, module, function, line, and pid. Messages longer
// than the forwarded truncation size are cut at that byte length; a
// zero or negative size disables truncation.
//
// The runtime severity mask starts with all bits set and is adjusted
// via SetRuntimeMask. Its bits are combined with call ranks by the
// gating front; this backend attaches no meaning to them beyond
// storage.
package zapbackend
