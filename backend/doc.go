// Package backend defines the boundary between gatelog's gating core
// and the external logging system that owns storage, formatting,
// handler dispatch, and output.
//
// The core calls DispatchLog once per admitted log line and
// RuntimeMask once per deferred-message resolution; everything else
// on the Backend interface is pass-through plumbing forwarded
// verbatim by the logger with no core logic attached.
//
// The runtime severity mask is owned entirely by the backend. The
// core combines it with a call's rank using bitwise conjunction, so
// the backend decides which rank bits are live; the default
// implementation in zapbackend starts with all bits set.
package backend
