package engine

import "time"

// TimeProvider supplies the current time. The engine never calls time.Now
// directly so phase timing is fully controllable in tests.
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider returns real time with monotonic clock readings.
type SystemTimeProvider struct{}

// NewSystemTimeProvider creates a monotonic time provider.
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time.
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}
