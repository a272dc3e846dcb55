package testutil

import "sync/atomic"

// MockClock is a settable clock, in milliseconds since the Unix epoch.
type MockClock struct {
	now atomic.Uint64
}

// NewMockClock returns a MockClock set to now.
func NewMockClock(now uint64) *MockClock {
	c := &MockClock{}
	c.now.Store(now)
	return c
}

// Now returns the current mocked time.
func (c *MockClock) Now() uint64 {
	return c.now.Load()
}

// Set moves the clock to now.
func (c *MockClock) Set(now uint64) {
	c.now.Store(now)
}

// Advance moves the clock forward by ms milliseconds.
func (c *MockClock) Advance(ms uint64) {
	c.now.Add(ms)
}
