package adapter

import "time"

// Clock returns the current local time.
type Clock interface {
	Now() time.Time
}

// LocalClock reads the system clock.
type LocalClock struct{}

// NewLocalClock constructs a LocalClock.
func NewLocalClock() *LocalClock {
	return &LocalClock{}
}

// Now returns the current local time.
func (LocalClock) Now() time.Time {
	return time.Now()
}
