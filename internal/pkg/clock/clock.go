package clock

import "time"

// Clock abstracts time so event and snapshot timestamps are testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock frozen at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the frozen time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Set moves the clock to an absolute time.
func (m *MockClock) Set(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
