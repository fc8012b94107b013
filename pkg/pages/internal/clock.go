// Package internal provides internal utilities for the pages package.
package internal

import (
	"context"
	"time"
)

// Clock tells time and sleeps. This abstraction allows for deterministic
// testing of the page objects' waits and retries.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock is the wall clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// MockClock is a Clock for testing whose Sleep advances time instantly and
// records the requested durations. It is not safe for concurrent use.
type MockClock struct {
	current time.Time
	sleeps  []time.Duration
}

// NewMockClock creates a new MockClock initialized to the given time.
// If t is zero, it initializes to a reasonable default start time.
func NewMockClock(t time.Time) *MockClock {
	if t.IsZero() {
		t = time.Unix(1000000000, 0) // 2001-09-09
	}
	return &MockClock{current: t}
}

// Now returns the mock clock's current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Sleep advances the clock by d without blocking.
// Panics if d is negative to maintain monotonicity.
func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if d < 0 {
		panic("MockClock.Sleep: duration must be non-negative")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.sleeps = append(m.sleeps, d)
	m.current = m.current.Add(d)
	return nil
}

// Sleeps returns every duration passed to Sleep, in order.
func (m *MockClock) Sleeps() []time.Duration {
	return append([]time.Duration(nil), m.sleeps...)
}
