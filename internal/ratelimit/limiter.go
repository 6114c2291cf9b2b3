package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Result reports the outcome of a limiter check.
type Result struct {
	Allowed    bool
	Remaining  int
	ResetTime  time.Time
	RetryAfter int
}

type window struct {
	count     int
	resetTime time.Time
}

// Limiter is a process-wide fixed-window request counter keyed by caller
// identity. State is in-memory only: nothing survives a restart and nothing is
// shared across instances.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// NewLimiter constructs an empty limiter.
func NewLimiter() *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Check records one request for identity against a fixed window of
// windowDur holding at most maxRequests. The request that would exceed the
// limit is rejected and not counted.
func (l *Limiter) Check(identity string, maxRequests int, windowDur time.Duration) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identity]
	if !ok || now.After(w.resetTime) {
		w = &window{count: 1, resetTime: now.Add(windowDur)}
		l.windows[identity] = w
		return Result{Allowed: true, Remaining: maxRequests - 1, ResetTime: w.resetTime}
	}

	if w.count >= maxRequests {
		retryAfter := int(math.Ceil(w.resetTime.Sub(now).Seconds()))
		return Result{Allowed: false, Remaining: 0, ResetTime: w.resetTime, RetryAfter: retryAfter}
	}

	w.count++
	return Result{Allowed: true, Remaining: maxRequests - w.count, ResetTime: w.resetTime}
}

// Sweep drops identities whose window closed more than olderThan ago and
// returns how many entries were removed.
func (l *Limiter) Sweep(olderThan time.Duration) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for identity, w := range l.windows {
		if now.Sub(w.resetTime) > olderThan {
			delete(l.windows, identity)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked identities.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// StartSweeper runs the periodic cleanup until ctx is cancelled. The caller
// owns the lifecycle; cancel the context on shutdown.
func (l *Limiter) StartSweeper(ctx context.Context, interval, olderThan time.Duration, logger *zap.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := l.Sweep(olderThan); removed > 0 {
					logger.Debug("rate limit sweep", zap.Int("removed", removed))
				}
			}
		}
	}()
}
