package widget

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/aizah-hospitality/booking-api/internal/domain/availability"
	"github.com/aizah-hospitality/booking-api/internal/domain/pricing"
	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
)

// isoLayout is how the storefront has always serialized dates in URLs and
// widget payloads.
const isoLayout = "2006-01-02T15:04:05.000Z"

// OverlayState tracks which picker panel is open. The date picker and the
// guest stepper are mutually exclusive; opening one closes the other.
type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayDates
	OverlayGuests
)

// ErrSelectionConflict is returned by SetRange when the candidate span
// touches a booked interval. The previous selection is kept.
var ErrSelectionConflict = errors.New("selected dates overlap an existing booking")

// Session is one visitor's interaction with a room's booking widget:
// the date selection, guest counts, the latest polled price table and
// booked intervals, and the overlay state.
type Session struct {
	mu     sync.Mutex
	client *Client

	roomSlug string
	roomName string

	checkin  time.Time
	checkout time.Time
	guests   Counter
	children Counter
	infants  Counter
	pets     Counter

	table   *pricing.Table
	booked  []availability.Interval
	overlay OverlayState
}

// NewSession starts a session with tonight preselected and one adult,
// the widget's initial state.
func NewSession(client *Client, roomSlug, roomName string) *Session {
	today := dateutil.Date(time.Now().UTC())
	return &Session{
		client:   client,
		roomSlug: roomSlug,
		roomName: roomName,
		checkin:  today,
		checkout: dateutil.AddDays(today, 1),
		guests:   NewCounter(1),
		children: NewCounter(0),
		infants:  NewCounter(0),
		pets:     NewCounter(0),
	}
}

// Refresh pulls the latest price table and booked intervals. It is the
// poll task; both fetches must succeed for the state to update.
func (s *Session) Refresh(ctx context.Context) error {
	table, err := s.client.FetchPrices(ctx, s.roomSlug)
	if err != nil {
		return err
	}
	booked, err := s.client.FetchBookings(ctx, s.roomName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.table = table
	s.booked = booked
	s.mu.Unlock()
	return nil
}

// UpdatePrices replaces the price table.
func (s *Session) UpdatePrices(t *pricing.Table) {
	s.mu.Lock()
	s.table = t
	s.mu.Unlock()
}

// UpdateBookings replaces the booked intervals.
func (s *Session) UpdateBookings(intervals []availability.Interval) {
	s.mu.Lock()
	s.booked = intervals
	s.mu.Unlock()
}

// SetRange applies a new date selection. Times of day are dropped, a span
// shorter than one night snaps to checkin + 1 day, and a span touching a
// booked interval is rejected with the previous selection intact.
func (s *Session) SetRange(start, end time.Time) error {
	start = dateutil.Date(start)
	end = dateutil.Date(end)
	if dateutil.DaysBetween(start, end) < 1 {
		end = dateutil.AddDays(start, 1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if availability.RangeHasConflict(start, end, s.booked) {
		return ErrSelectionConflict
	}
	s.checkin = start
	s.checkout = end
	return nil
}

// Range returns the current selection.
func (s *Session) Range() (checkin, checkout time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkin, s.checkout
}

// IsDateDisabled reports whether the calendar should grey out a day.
func (s *Session) IsDateDisabled(day time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return availability.IsDateBooked(day, s.booked)
}

// Quote prices the current selection against the latest table.
func (s *Session) Quote() pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.QuoteStay(s.checkin, s.checkout, s.table)
}

// Overlay returns the open panel.
func (s *Session) Overlay() OverlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay
}

// ToggleDateOverlay opens the date picker, or closes it if already open.
func (s *Session) ToggleDateOverlay() OverlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == OverlayDates {
		s.overlay = OverlayClosed
	} else {
		s.overlay = OverlayDates
	}
	return s.overlay
}

// ToggleGuestOverlay opens the guest stepper, or closes it if already open.
func (s *Session) ToggleGuestOverlay() OverlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == OverlayGuests {
		s.overlay = OverlayClosed
	} else {
		s.overlay = OverlayGuests
	}
	return s.overlay
}

// CloseOverlays closes whichever panel is open.
func (s *Session) CloseOverlays() {
	s.mu.Lock()
	s.overlay = OverlayClosed
	s.mu.Unlock()
}

func (s *Session) AddGuest() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.Increase()
}

func (s *Session) RemoveGuest() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.Decrease()
}

func (s *Session) AddChild() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.children.Increase()
}

func (s *Session) RemoveChild() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.children.Decrease()
}

func (s *Session) AddInfant() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infants.Increase()
}

func (s *Session) RemoveInfant() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infants.Decrease()
}

func (s *Session) AddPet() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pets.Increase()
}

func (s *Session) RemovePet() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pets.Decrease()
}

// Guests, Children, Infants and Pets return the current counts. Only
// guests and children travel in payloads and checkout URLs; infants and
// pets are display-only, as on the original stepper.
func (s *Session) Guests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guests.Value()
}

func (s *Session) Children() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.children.Value()
}

func (s *Session) Infants() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infants.Value()
}

func (s *Session) Pets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pets.Value()
}

// BookNow revalidates the selection against fresh bookings and posts the
// reservation to /api/checkout, the widget's direct submit path, then
// refreshes so the new booking blocks the calendar immediately.
func (s *Session) BookNow(ctx context.Context) error {
	booked, err := s.client.FetchBookings(ctx, s.roomName)
	if err != nil {
		return err
	}
	s.UpdateBookings(booked)

	s.mu.Lock()
	if availability.RangeHasConflict(s.checkin, s.checkout, s.booked) {
		s.mu.Unlock()
		return ErrSelectionConflict
	}
	payload := s.payloadLocked()
	s.mu.Unlock()

	if err := s.client.SubmitBooking(ctx, payload); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *Session) payloadLocked() BookingPayload {
	q := pricing.QuoteStay(s.checkin, s.checkout, s.table)
	return BookingPayload{
		RoomName:   s.roomName,
		Checkin:    s.checkin.Format(isoLayout),
		Checkout:   s.checkout.Format(isoLayout),
		Guests:     s.guests.Value(),
		Children:   s.children.Value(),
		Nights:     q.Nights,
		Price:      q.NightlyRate(),
		TotalPrice: q.Total,
	}
}

// CheckoutURL builds the link the Reserve button navigates to. The query
// parameter names are the contract between the widget and the checkout
// page and must not change.
func (s *Session) CheckoutURL(base string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := pricing.QuoteStay(s.checkin, s.checkout, s.table)
	params := url.Values{}
	params.Set("roomname", s.roomName)
	params.Set("startDate", s.checkin.Format(isoLayout))
	params.Set("endDate", s.checkout.Format(isoLayout))
	params.Set("guests", strconv.Itoa(s.guests.Value()))
	params.Set("children", strconv.Itoa(s.children.Value()))
	params.Set("price", strconv.FormatFloat(q.NightlyRate(), 'f', -1, 64))
	params.Set("totalPrice", strconv.FormatFloat(q.Total, 'f', -1, 64))

	return base + "?" + params.Encode()
}
