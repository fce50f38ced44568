package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// The storefront sends dates in two renderings: the booking widget posts
// ISO-8601 timestamps, the checkout page posts "2-Jan-2006" / "2 Jan 2006"
// strings. Everything is reduced to date-only UTC values on the way in.
var acceptedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
	"2-Jan-2006",
	"2 Jan 2006",
}

// Date truncates t to midnight UTC, discarding time-of-day and zone.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse parses a date string in any of the accepted storefront renderings
// and truncates it to date-only.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// DaysBetween returns the number of whole days from a to b at date
// granularity. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)) / (24 * time.Hour))
}

// AddDays returns the date n days after t, at date granularity.
func AddDays(t time.Time, n int) time.Time {
	return Date(t).AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}
