package services

import (
	"errors"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// DateAtLocation flattens a timestamp to midnight of its calendar date in
// the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ParseDay parses the date representations that reach the calendar. A bare
// YYYY-MM-DD is a local calendar date (no timezone conversion); anything
// carrying a time component is parsed and truncated to local midnight.
func ParseDay(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty date")
	}

	if len(trimmed) == len(dayLayout) {
		return time.ParseInLocation(dayLayout, trimmed, location)
	}

	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, err
	}
	return DateAtLocation(parsed, location), nil
}

// SameDay reports whether two values fall on the same local calendar date.
func SameDay(a, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}

// DayKey is the map key used for per-date grouping throughout the
// aggregators.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayLayout)
}
