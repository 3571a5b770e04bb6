package timefeed

import "time"

// Clock supplies the current instant. Production code uses SystemClock;
// tests substitute a fixed clock to make snapshots deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
