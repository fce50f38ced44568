package widget

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aizah-hospitality/booking-api/internal/domain/availability"
	"github.com/aizah-hospitality/booking-api/internal/domain/pricing"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestSession() *Session {
	return NewSession(nil, "dubai-mall-residence", "Dubai Mall Residence")
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()

	in, out := s.Range()
	if !out.After(in) {
		t.Fatalf("default range %v -> %v is not one night", in, out)
	}
	if s.Guests() != 1 || s.Children() != 0 {
		t.Fatalf("defaults guests=%d children=%d", s.Guests(), s.Children())
	}
	if s.Overlay() != OverlayClosed {
		t.Fatal("overlay should start closed")
	}
}

func TestSetRangeSnapsShortSpan(t *testing.T) {
	s := newTestSession()

	if err := s.SetRange(day(2026, 7, 10), day(2026, 7, 10)); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	in, out := s.Range()
	if !in.Equal(day(2026, 7, 10)) || !out.Equal(day(2026, 7, 11)) {
		t.Fatalf("range = %v -> %v", in, out)
	}

	// Time-of-day is dropped before comparison.
	if err := s.SetRange(
		time.Date(2026, 7, 10, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 7, 11, 1, 0, 0, 0, time.UTC),
	); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	in, out = s.Range()
	if !in.Equal(day(2026, 7, 10)) || !out.Equal(day(2026, 7, 11)) {
		t.Fatalf("range = %v -> %v", in, out)
	}
}

func TestSetRangeConflictKeepsPreviousSelection(t *testing.T) {
	s := newTestSession()
	if err := s.SetRange(day(2026, 7, 1), day(2026, 7, 3)); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	s.UpdateBookings([]availability.Interval{
		{Checkin: day(2026, 7, 10), Checkout: day(2026, 7, 12)},
	})

	err := s.SetRange(day(2026, 7, 9), day(2026, 7, 11))
	if !errors.Is(err, ErrSelectionConflict) {
		t.Fatalf("err = %v, want ErrSelectionConflict", err)
	}

	in, out := s.Range()
	if !in.Equal(day(2026, 7, 1)) || !out.Equal(day(2026, 7, 3)) {
		t.Fatalf("selection changed after rejected range: %v -> %v", in, out)
	}
}

func TestSetRangeEndingOnCheckinDayAllowed(t *testing.T) {
	s := newTestSession()
	s.UpdateBookings([]availability.Interval{
		{Checkin: day(2026, 7, 10), Checkout: day(2026, 7, 12)},
	})

	// Checkout day 10 means last night is the 9th; no overlap.
	if err := s.SetRange(day(2026, 7, 8), day(2026, 7, 10)); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
}

func TestIsDateDisabledInclusiveBounds(t *testing.T) {
	s := newTestSession()
	s.UpdateBookings([]availability.Interval{
		{Checkin: day(2026, 7, 10), Checkout: day(2026, 7, 12)},
	})

	for d := 10; d <= 12; d++ {
		if !s.IsDateDisabled(day(2026, 7, d)) {
			t.Fatalf("day %d should be disabled", d)
		}
	}
	if s.IsDateDisabled(day(2026, 7, 9)) || s.IsDateDisabled(day(2026, 7, 13)) {
		t.Fatal("days outside the booking should be enabled")
	}
}

func TestQuoteWithoutTableUsesDefault(t *testing.T) {
	s := newTestSession()
	if err := s.SetRange(day(2026, 7, 10), day(2026, 7, 12)); err != nil {
		t.Fatalf("SetRange: %v", err)
	}

	q := s.Quote()
	if q.Nights != 2 {
		t.Fatalf("nights = %d", q.Nights)
	}
	if q.Total != 2*pricing.DefaultNightly {
		t.Fatalf("total = %v", q.Total)
	}
}

func TestOverlaysAreMutuallyExclusive(t *testing.T) {
	s := newTestSession()

	if got := s.ToggleDateOverlay(); got != OverlayDates {
		t.Fatalf("state = %v", got)
	}
	if got := s.ToggleGuestOverlay(); got != OverlayGuests {
		t.Fatalf("state = %v", got)
	}
	if got := s.ToggleGuestOverlay(); got != OverlayClosed {
		t.Fatalf("state = %v", got)
	}

	s.ToggleDateOverlay()
	s.CloseOverlays()
	if s.Overlay() != OverlayClosed {
		t.Fatal("CloseOverlays did not close")
	}
}

func TestGuestCountersFloorAtZero(t *testing.T) {
	s := newTestSession()

	s.AddGuest()
	if s.Guests() != 2 {
		t.Fatalf("guests = %d", s.Guests())
	}
	s.RemoveGuest()
	s.RemoveGuest()
	if got := s.RemoveGuest(); got != 0 {
		t.Fatalf("guests went below zero: %d", got)
	}

	if got := s.RemoveChild(); got != 0 {
		t.Fatalf("children went below zero: %d", got)
	}
	s.AddChild()
	if s.Children() != 1 {
		t.Fatalf("children = %d", s.Children())
	}

	// All four kinds step independently with the same floor.
	s.AddInfant()
	s.AddInfant()
	if s.Infants() != 2 {
		t.Fatalf("infants = %d", s.Infants())
	}
	if got := s.RemovePet(); got != 0 {
		t.Fatalf("pets went below zero: %d", got)
	}
	s.AddPet()
	if s.Pets() != 1 {
		t.Fatalf("pets = %d", s.Pets())
	}
	if s.Children() != 1 || s.Infants() != 2 {
		t.Fatal("counters are not independent")
	}
}

func TestCheckoutURLContract(t *testing.T) {
	s := newTestSession()
	if err := s.SetRange(day(2026, 7, 10), day(2026, 7, 12)); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	s.AddChild()

	raw := s.CheckoutURL("https://aizahhospitality.com/checkout")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("bad url: %v", err)
	}
	q := u.Query()

	want := map[string]string{
		"roomname":   "Dubai Mall Residence",
		"guests":     "1",
		"children":   "1",
		"price":      "200",
		"totalPrice": "400",
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Fatalf("%s = %q, want %q", k, q.Get(k), v)
		}
	}
	if !strings.HasSuffix(q.Get("startDate"), ".000Z") {
		t.Fatalf("startDate not ISO-8601: %q", q.Get("startDate"))
	}
	if q.Get("startDate") != "2026-07-10T00:00:00.000Z" {
		t.Fatalf("startDate = %q", q.Get("startDate"))
	}
	if q.Get("endDate") != "2026-07-12T00:00:00.000Z" {
		t.Fatalf("endDate = %q", q.Get("endDate"))
	}
}
