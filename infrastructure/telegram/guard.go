package telegram

import (
	"path/filepath"
	"sync"
)

// Session stores are single-writer: two concurrent connections against the
// same file corrupt it or get rejected. One process-lifetime mutex per
// normalized store path serializes them. Portable string-blob sessions build
// an independent session per use and are not guarded.
var sessionLocks = struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}{m: make(map[string]*sync.Mutex)}

func sessionLockFor(storePath string) *sync.Mutex {
	key := normalizeStorePath(storePath)

	sessionLocks.mu.Lock()
	defer sessionLocks.mu.Unlock()

	lock, ok := sessionLocks.m[key]
	if !ok {
		lock = &sync.Mutex{}
		sessionLocks.m[key] = lock
	}
	return lock
}

func normalizeStorePath(storePath string) string {
	if abs, err := filepath.Abs(storePath); err == nil {
		return abs
	}
	return filepath.Clean(storePath)
}

// WithSessionLock runs fn while holding the exclusive lock for the given
// store path. The lock covers the whole connect-use-disconnect span and is
// released on every exit path. An empty path (portable credential) runs fn
// unguarded.
func WithSessionLock(storePath string, fn func() error) error {
	if storePath == "" {
		return fn()
	}
	lock := sessionLockFor(storePath)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}
