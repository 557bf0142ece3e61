// Package clock provides the monotonic time source used for position
// accounting. Readings only move forward and are never paused or rewound.
package clock

import (
	"sync"
	"time"
)

// Clock reports elapsed time since an arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

// System is a Clock backed by the runtime's monotonic clock.
type System struct {
	origin time.Time
}

// NewSystem returns a System clock whose origin is the moment of the call.
func NewSystem() *System {
	return &System{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (s *System) Now() time.Duration {
	return time.Since(s.origin)
}

// Manual is a Clock advanced explicitly, for tests.
type Manual struct {
	mu  sync.Mutex
	now time.Duration
}

// NewManual returns a Manual clock reading start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

// Now returns the current reading.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d. Negative values are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	m.now += d
	m.mu.Unlock()
}

var (
	_ Clock = (*System)(nil)
	_ Clock = (*Manual)(nil)
)
