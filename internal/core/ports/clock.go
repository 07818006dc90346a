package ports

import "time"

// Clock supplies the current time. Abstracting it lets tests drive deadline
// behavior with simulated time instead of sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
