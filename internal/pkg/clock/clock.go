package clock

import "time"

// Precision matches timestamptz so values survive a round trip through the store unchanged.
const Precision = time.Microsecond

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}

// MockClock always reports the instant it was built with.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t.UTC().Truncate(Precision)}
}

func (c *MockClock) Now() time.Time {
	return c.now
}
