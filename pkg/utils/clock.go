package utils

import "time"

// Clock abstracts "today" so past-date rules can be tested against a fixed
// calendar date instead of wall-clock time.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return DateOnly(time.Now())
}

func NewSystemClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same day. Test use.
type FixedClock struct {
	Day time.Time
}

func (f FixedClock) Today() time.Time {
	return DateOnly(f.Day)
}

// DateOnly truncates a timestamp to midnight UTC. Order dates carry no time
// component; comparisons are date-only.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
