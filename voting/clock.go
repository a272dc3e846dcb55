package voting

import "time"

// Clock provides the current time in milliseconds since the Unix epoch.
type Clock interface {
	Now() uint64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() uint64 {
	return uint64(time.Now().UnixMilli())
}
