// Package availability decides whether dates collide with existing
// reservations. It is pure: the same checks run server-side before a
// booking write and client-side in the booking widget.
package availability

import (
	"time"

	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
)

// Interval is an existing reservation's span. Both ends are inclusive at
// date granularity: the checkout day itself cannot take a new check-in.
type Interval struct {
	Checkin  time.Time
	Checkout time.Time
}

// IsDateBooked reports whether day falls inside any interval. Time-of-day
// is discarded on both sides before comparing; interval order does not
// affect the result.
func IsDateBooked(day time.Time, intervals []Interval) bool {
	d := dateutil.Date(day)
	for _, iv := range intervals {
		checkin := dateutil.Date(iv.Checkin)
		checkout := dateutil.Date(iv.Checkout)
		if !d.Before(checkin) && !d.After(checkout) {
			return true
		}
	}
	return false
}

// RangeHasConflict walks every day in [start, end) and reports whether any
// of them is booked. The end day is exclusive here: a stay may check out
// on the morning another reservation's span begins only if that day is the
// walked range's endpoint.
func RangeHasConflict(start, end time.Time, intervals []Interval) bool {
	for d := dateutil.Date(start); d.Before(dateutil.Date(end)); d = dateutil.AddDays(d, 1) {
		if IsDateBooked(d, intervals) {
			return true
		}
	}
	return false
}
