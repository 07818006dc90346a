// Package orderlock serializes command processing per order. Commands for
// different orders run concurrently; commands for the same order are mutually
// exclusive, including the scheduler's system commands, so a tick and a user
// action on the same order can never interleave.
package orderlock

import (
	"context"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
)

// Registry hands out one mutex per order id. Entries are created lazily and
// kept for the life of the process; the set of concurrently active orders is
// bounded by the request pool, so the map stays small.
type Registry struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*lockEntry
}

type lockEntry struct {
	ch chan struct{}
}

// NewRegistry creates an empty per-order lock registry.
func NewRegistry() *Registry {
	return &Registry{
		locks: make(map[kernel.UUID]*lockEntry),
	}
}

// Acquire blocks until the order's lock is held or the context is cancelled.
// A command may be abandoned before it acquires the lock (client disconnect)
// but never once it holds it; callers must not check ctx again between
// Acquire and the commit. Returns a release function on success.
func (r *Registry) Acquire(ctx context.Context, orderID kernel.UUID) (func(), error) {
	entry := r.entry(orderID)

	select {
	case entry.ch <- struct{}{}:
		return func() { <-entry.ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Registry) entry(orderID kernel.UUID) *lockEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.locks[orderID]
	if !ok {
		entry = &lockEntry{ch: make(chan struct{}, 1)}
		r.locks[orderID] = entry
	}
	return entry
}
