// Package ratelimit implements per-identity fixed-window request throttling.
package ratelimit

import "time"

// Option applies a configuration option to the limiter.
type Option func(*fixedWindow)

// WithWindow sets the window length.
func WithWindow(w time.Duration) Option {
	return func(l *fixedWindow) {
		if w > 0 {
			l.window = w
		}
	}
}

// WithMaxHits sets the number of requests allowed per window.
func WithMaxHits(n int) Option {
	return func(l *fixedWindow) {
		if n > 0 {
			l.maxHits = n
		}
	}
}

// WithClock overrides the time source. Tests use this to advance the window
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(l *fixedWindow) {
		if now != nil {
			l.now = now
		}
	}
}
