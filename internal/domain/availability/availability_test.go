package availability

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateBookedInclusiveBothEnds(t *testing.T) {
	intervals := []Interval{{Checkin: day(2025, 8, 1), Checkout: day(2025, 8, 5)}}

	cases := []struct {
		d    time.Time
		want bool
	}{
		{day(2025, 7, 31), false},
		{day(2025, 8, 1), true},
		{day(2025, 8, 3), true},
		{day(2025, 8, 5), true},  // checkout day itself is blocked
		{day(2025, 8, 6), false}, // day after is free
	}
	for _, tc := range cases {
		if got := IsDateBooked(tc.d, intervals); got != tc.want {
			t.Errorf("IsDateBooked(%s) = %v, want %v", tc.d.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestIsDateBookedDropsTimeOfDay(t *testing.T) {
	intervals := []Interval{{
		Checkin:  time.Date(2025, 8, 1, 23, 30, 0, 0, time.UTC),
		Checkout: time.Date(2025, 8, 5, 0, 1, 0, 0, time.UTC),
	}}
	if !IsDateBooked(time.Date(2025, 8, 5, 18, 0, 0, 0, time.UTC), intervals) {
		t.Fatal("expected checkout day booked regardless of time-of-day")
	}
}

func TestIsDateBookedOrderIndependent(t *testing.T) {
	a := Interval{Checkin: day(2025, 8, 1), Checkout: day(2025, 8, 2)}
	b := Interval{Checkin: day(2025, 8, 10), Checkout: day(2025, 8, 12)}

	d := day(2025, 8, 11)
	if IsDateBooked(d, []Interval{a, b}) != IsDateBooked(d, []Interval{b, a}) {
		t.Fatal("result must not depend on interval order")
	}
}

func TestRangeHasConflict(t *testing.T) {
	intervals := []Interval{{Checkin: day(2025, 8, 10), Checkout: day(2025, 8, 12)}}

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"disjoint before", day(2025, 8, 1), day(2025, 8, 5), false},
		{"overlaps head", day(2025, 8, 8), day(2025, 8, 11), true},
		{"contained", day(2025, 8, 10), day(2025, 8, 12), true},
		{"ends on checkin day", day(2025, 8, 8), day(2025, 8, 10), false}, // end exclusive
		{"starts on checkout day", day(2025, 8, 12), day(2025, 8, 14), true},
		{"starts day after checkout", day(2025, 8, 13), day(2025, 8, 15), false},
	}
	for _, tc := range cases {
		if got := RangeHasConflict(tc.start, tc.end, intervals); got != tc.want {
			t.Errorf("%s: RangeHasConflict = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRangeHasConflictEmptyIntervals(t *testing.T) {
	if RangeHasConflict(day(2025, 1, 1), day(2026, 1, 1), nil) {
		t.Fatal("no intervals means no conflict, for any selection")
	}
}
