package inventory

import (
	"sync"

	"github.com/spal7319/movie-ticket-booking/internal/model"
)

// LockRegistry hands out one exclusive lock per ShowKey, creating it on
// first request.  Lookup and creation are serialized by the registry's own
// mutex so two goroutines asking for the same new key never receive two
// different locks.  The registry never shrinks: lock objects live for the
// process lifetime, which is acceptable because the key space is small and
// bounded by the shows actually requested.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[model.ShowKey]*sync.Mutex
}

// NewLockRegistry returns an empty registry.
func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[model.ShowKey]*sync.Mutex)}
}

// Acquire returns the lock associated with key, creating it if absent.
// The registry mutex is held only for the lookup, never across a seat
// operation; the caller locks the returned mutex for the duration of its
// read or booking transaction and must not hold it across a network
// round trip.
func (r *LockRegistry) Acquire(key model.ShowKey) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}
