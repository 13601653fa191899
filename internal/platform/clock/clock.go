package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local time; weekly and daily buckets roll over on the
// user's Monday, not UTC's.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
