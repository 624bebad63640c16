package service

import (
	"time"
)

// ParseDateOr parses a YYYY-MM-DD report parameter, falling back to the
// given default on any parse failure. Report filters never error on bad
// input; they substitute a sensible range and proceed.
func ParseDateOr(s string, fallback time.Time) time.Time {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly(fallback)
	}
	return parsed
}

// DateOnly truncates a timestamp to midnight UTC of the same calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
