package livequery

import (
	"log/slog"
	"sync"
)

// Releaser is satisfied by every *Subscription.
type Releaser interface {
	Release()
}

// Key names one mounted screen's use of one query.
type Key struct {
	Owner string
	Query string
}

// Tracker enforces at most one active subscription per key. Mounting a key
// that is already active releases the previous subscription.
type Tracker struct {
	mu     sync.Mutex
	active map[Key]Releaser
	logger *slog.Logger
}

func NewTracker(logger *slog.Logger) *Tracker {
	return &Tracker{
		active: make(map[Key]Releaser),
		logger: logger,
	}
}

func (t *Tracker) Mount(key Key, r Releaser) {
	t.mu.Lock()
	prev, ok := t.active[key]
	t.active[key] = r
	t.mu.Unlock()

	if ok && prev != r {
		t.logger.Debug("replacing live query subscription", "owner", key.Owner, "query", key.Query)
		prev.Release()
	}
}

// Unmount releases r and forgets the key if r is still the active subscription.
func (t *Tracker) Unmount(key Key, r Releaser) {
	t.mu.Lock()
	if cur, ok := t.active[key]; ok && cur == r {
		delete(t.active, key)
	}
	t.mu.Unlock()

	r.Release()
}

func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// ReleaseAll tears down every subscription, e.g. on shutdown.
func (t *Tracker) ReleaseAll() {
	t.mu.Lock()
	active := t.active
	t.active = make(map[Key]Releaser)
	t.mu.Unlock()

	for _, r := range active {
		r.Release()
	}
	if len(active) > 0 {
		t.logger.Info("released live query subscriptions", "count", len(active))
	}
}
