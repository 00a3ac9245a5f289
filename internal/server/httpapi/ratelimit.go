package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/sam-ezra/todo/internal/common"
)

// FixedWindowLimiter admits up to permitLimit requests per window. Requests
// beyond the limit may wait for the next window, up to queueLimit waiters;
// everything past that is rejected immediately with common.ErrorRateLimited.
//
// Two instances protect the API: a strict one for the auth endpoints
// (60/min, no queue) and a wider one for everything else (600/min, queue 2).
type FixedWindowLimiter struct {
	mu          sync.Mutex
	permitLimit int
	window      time.Duration
	queueLimit  int

	windowStart time.Time
	used        int
	queued      int

	now func() time.Time
}

// NewFixedWindowLimiter constructs a limiter with the given window
// parameters.
func NewFixedWindowLimiter(permitLimit int, window time.Duration, queueLimit int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		permitLimit: permitLimit,
		window:      window,
		queueLimit:  queueLimit,
		now:         time.Now,
	}
}

// Acquire takes one permit, waiting at most one window rollover when the
// current window is exhausted and queue space remains.
func (l *FixedWindowLimiter) Acquire(ctx context.Context) error {
	l.mu.Lock()

	t := l.now()
	l.roll(t)

	if l.used < l.permitLimit {
		l.used++
		l.mu.Unlock()
		return nil
	}

	if l.queued >= l.queueLimit {
		l.mu.Unlock()
		return common.ErrorRateLimited
	}

	l.queued++
	wait := l.windowStart.Add(l.window).Sub(t)
	l.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		l.mu.Lock()
		l.queued--
		l.mu.Unlock()
		return ctx.Err()
	case <-timer.C:
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.queued--
	l.roll(l.now())
	if l.used >= l.permitLimit {
		return common.ErrorRateLimited
	}
	l.used++
	return nil
}

// roll resets the window counters when t has passed the current window.
// Caller holds the mutex.
func (l *FixedWindowLimiter) roll(t time.Time) {
	if l.windowStart.IsZero() || t.Sub(l.windowStart) >= l.window {
		l.windowStart = t
		l.used = 0
	}
}
