package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/safetrip/tripwatch/internal/pkg/logger"
)

const (
	// DefaultWindow is the minimum spacing between accepted reports
	// for one (trip, device) pair.
	DefaultWindow = 5 * time.Second

	// DefaultSweepThreshold is the map size that triggers an
	// opportunistic sweep on Allow.
	DefaultSweepThreshold = 1000

	// entryMaxAge is how long a last-accepted timestamp is kept before
	// a sweep discards it.
	entryMaxAge = time.Hour
)

// DeviceLimiter caps ingestion to at most one accepted report per
// (trip, device) within the window. It is an explicitly owned
// component constructed once at startup and injected where needed;
// the map is guarded by a single mutex. Two reports racing before the
// timestamp is recorded may both pass, which is acceptable:
// limiting is approximate, not mutual exclusion.
type DeviceLimiter struct {
	mu             sync.Mutex
	entries        map[string]time.Time
	window         time.Duration
	sweepThreshold int
	now            func() time.Time
}

// NewDeviceLimiter creates a limiter with the given window and sweep
// threshold. Non-positive arguments fall back to the defaults.
func NewDeviceLimiter(window time.Duration, sweepThreshold int) *DeviceLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if sweepThreshold <= 0 {
		sweepThreshold = DefaultSweepThreshold
	}
	return &DeviceLimiter{
		entries:        make(map[string]time.Time),
		window:         window,
		sweepThreshold: sweepThreshold,
		now:            time.Now,
	}
}

// Allow reports whether a report from the device may be accepted now.
// On allow it records the acceptance timestamp; on deny it leaves the
// map untouched.
func (l *DeviceLimiter) Allow(tripID, deviceID string) bool {
	key := tripID + ":" + deviceID

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if last, ok := l.entries[key]; ok && now.Sub(last) < l.window {
		return false
	}

	l.entries[key] = now
	if len(l.entries) > l.sweepThreshold {
		l.sweepLocked(now)
	}
	return true
}

// Sweep discards entries older than one hour and returns how many were
// removed.
func (l *DeviceLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(l.now())
}

// Len returns the current number of tracked (trip, device) pairs.
func (l *DeviceLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *DeviceLimiter) sweepLocked(now time.Time) int {
	removed := 0
	for key, last := range l.entries {
		if now.Sub(last) > entryMaxAge {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// StartSweeper runs a timer-driven sweep until ctx is cancelled.
func (l *DeviceLimiter) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := l.Sweep(); removed > 0 {
					logger.Debug("Swept stale rate limit entries",
						logger.Int("removed", removed),
						logger.Int("remaining", l.Len()))
				}
			}
		}
	}()
}
