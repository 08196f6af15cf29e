package store

import (
	"sync"
	"time"
)

// SlotLocks is an in-process advisory lock registry, keyed by unit id. It
// closes the gap between "check availability" and "append reservation":
// while one request holds the unit, competing bookings are rejected with a
// conflict instead of silently double-booking. Locks auto-expire so a
// crashed request cannot wedge a unit.
type SlotLocks struct {
	mu   sync.Mutex
	held map[string]time.Time
	ttl  time.Duration
}

func NewSlotLocks(ttl time.Duration) *SlotLocks {
	return &SlotLocks{
		held: make(map[string]time.Time),
		ttl:  ttl,
	}
}

// Acquire reports false when the key is already held and the hold has not
// expired.
func (l *SlotLocks) Acquire(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if expiry, ok := l.held[key]; ok && now.Before(expiry) {
		return false
	}

	l.held[key] = now.Add(l.ttl)
	return true
}

func (l *SlotLocks) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
}
