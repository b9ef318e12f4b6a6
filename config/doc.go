// Package config holds the process-wide logging configuration: the
// minimum level consulted on every gating decision and the message
// truncation size forwarded to the backend.
//
// A Store is an explicit configuration object rather than bare global
// state, so tests can construct independent instances. Reads are
// lock-free atomic loads, cheap enough for the hot path of every log
// call; writes are rare administrative operations.
//
// Setters validate their input and never panic: invalid input leaves
// the store unchanged, writes a human-readable report to the store's
// notice writer (os.Stderr by default), and returns a non-nil error.
// Legacy integer levels are still accepted by SetLevelNum but emit a
// deprecation advisory on every such call.
//
// The package maintains a default Store used by logger unless one is
// injected explicitly. FromEnv builds a Store from the GATELOG_LEVEL
// and GATELOG_TRUNCATE_SIZE environment variables.
package config
