// Package logger is the public API of gatelog. Most users only need
// to import this package.
//
// A Logger is immutable after construction — the backend and the
// configuration store are set once via the Builder and never
// modified. This makes Logger inherently safe for concurrent use
// without any locking on the read path.
//
// Every call passes through two gates. The first compares the call's
// rank against the store's configured threshold and costs a single
// atomic load plus an integer comparison; calls below the threshold
// terminate here before any message construction. The second gate
// applies only to deferred messages (the *Fn variants): the producer
// is invoked only when the call's rank ANDed with the backend's
// runtime severity mask is non-zero. A producer whose level is masked
// out is never executed — that is the lazy-evaluation contract:
//
//	log.DebugFn(func() string {
//	    return fmt.Sprintf("state: %v", expensiveDump())
//	})
//
// Admitted lines are handed to the backend together with a fresh
// call-site envelope (module, function, line, pid) and the configured
// truncation size. The remaining Logger methods — traces, handler
// status, handler levels, errno translation — carry no logic and are
// forwarded verbatim to the backend.
//
// The package initializes a default Logger (zap console backend on
// stderr, shared config.Default() store) in init(), so simple
// programs can log without any setup:
//
//	logger.Infof("listening on :%d", port)
package logger
