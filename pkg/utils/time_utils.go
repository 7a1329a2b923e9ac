package utils

import "time"

// DisplayDateLayout is how dates are shown on screens, e.g. "May 10, 2025".
const DisplayDateLayout = "Jan 2, 2006"

func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

// Clock lets services take "now" as a dependency.
type Clock func() time.Time

func SystemClock() Clock { return time.Now }

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
