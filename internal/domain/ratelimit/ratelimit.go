// Package ratelimit implements per-identity fixed-window request throttling.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Default limiter configuration constants. Three submissions per ten minutes
// per identity is deterrence against drive-by abuse, not a hard guarantee:
// the state is local to one instance, so running N instances loosens the
// limit by a factor of N.
const (
	defaultWindow  = 10 * time.Minute
	defaultMaxHits = 3
)

// Limiter answers whether a request from an identity may proceed.
type Limiter interface {
	// Allow records a hit for identity and reports whether it is within the
	// current window's budget. Denied calls do not mutate the slot.
	Allow(ctx context.Context, identity string) bool

	// Size returns the number of tracked identities.
	Size() int
}

// slot tracks one identity's hits within the current window.
type slot struct {
	count   int
	resetAt time.Time
}

// fixedWindow implements Limiter with an in-memory map. Slots are never
// explicitly deleted; a stale slot is simply treated as expired on its next
// access, so correctness does not depend on eviction.
type fixedWindow struct {
	mu      sync.Mutex
	slots   map[string]*slot
	window  time.Duration
	maxHits int
	now     func() time.Time
}

// New creates a fixed-window limiter with configuration options.
func New(opts ...Option) Limiter {
	l := &fixedWindow{
		slots:   make(map[string]*slot),
		window:  defaultWindow,
		maxHits: defaultMaxHits,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow records a hit and reports whether identity is within budget.
func (l *fixedWindow) Allow(_ context.Context, identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	s, ok := l.slots[identity]
	if !ok || now.After(s.resetAt) {
		l.slots[identity] = &slot{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if s.count >= l.maxHits {
		return false
	}
	s.count++
	return true
}

// Size returns the number of tracked identities.
func (l *fixedWindow) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
