package config

import "sync"

var (
	defaultStore = NewStore()
	defaultMu    sync.RWMutex
)

// Default returns the process-wide default store.
func Default() *Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}

// SetDefault replaces the process-wide default store. Passing nil is
// ignored.
func SetDefault(s *Store) {
	if s == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}
