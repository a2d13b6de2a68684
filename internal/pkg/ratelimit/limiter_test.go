package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter(window time.Duration, threshold int) (*DeviceLimiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	l := NewDeviceLimiter(window, threshold)
	l.now = clock.now
	return l, clock
}

func TestAllow_FirstReportAccepted(t *testing.T) {
	l, _ := newTestLimiter(5*time.Second, 1000)

	assert.True(t, l.Allow("trip-42", "D1"))
}

func TestAllow_WithinWindowDenied(t *testing.T) {
	l, clock := newTestLimiter(5*time.Second, 1000)

	assert.True(t, l.Allow("trip-42", "D1"))

	clock.advance(1 * time.Second)
	assert.False(t, l.Allow("trip-42", "D1"))

	// A denied report must not refresh the window
	clock.advance(4 * time.Second)
	assert.True(t, l.Allow("trip-42", "D1"))
}

func TestAllow_AfterWindowAccepted(t *testing.T) {
	l, clock := newTestLimiter(5*time.Second, 1000)

	assert.True(t, l.Allow("trip-42", "D1"))
	clock.advance(6 * time.Second)
	assert.True(t, l.Allow("trip-42", "D1"))
}

func TestAllow_IndependentDevices(t *testing.T) {
	l, _ := newTestLimiter(5*time.Second, 1000)

	assert.True(t, l.Allow("trip-42", "D1"))
	assert.True(t, l.Allow("trip-42", "D2"))
	assert.True(t, l.Allow("trip-43", "D1"))
}

func TestSweep_DiscardsStaleEntries(t *testing.T) {
	l, clock := newTestLimiter(5*time.Second, 1000)

	assert.True(t, l.Allow("trip-42", "D1"))
	assert.True(t, l.Allow("trip-42", "D2"))
	assert.Equal(t, 2, l.Len())

	clock.advance(61 * time.Minute)
	assert.True(t, l.Allow("trip-42", "D3"))

	removed := l.Sweep()
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, l.Len())
}

func TestAllow_SweepsWhenThresholdExceeded(t *testing.T) {
	l, clock := newTestLimiter(5*time.Second, 3)

	assert.True(t, l.Allow("trip-42", "D1"))
	assert.True(t, l.Allow("trip-42", "D2"))
	assert.True(t, l.Allow("trip-42", "D3"))

	// All previous entries are past the max age when the threshold is
	// crossed, so the opportunistic sweep drops them.
	clock.advance(2 * time.Hour)
	assert.True(t, l.Allow("trip-42", "D4"))
	assert.Equal(t, 1, l.Len())
}

func TestAllow_ConcurrentAccess(t *testing.T) {
	l := NewDeviceLimiter(5*time.Second, 1000)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				l.Allow("trip-42", "D1")
				l.Allow("trip-42", string(rune('A'+n)))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.GreaterOrEqual(t, l.Len(), 1)
}
