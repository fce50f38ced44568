package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
	"github.com/aizah-hospitality/booking-api/internal/pkg/email"
)

// Service implements the checkout flow shared by both payment paths.
type Service struct {
	repo   Repository
	emails email.Sender
	logger zerolog.Logger
}

func NewService(repo Repository, emails email.Sender, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		emails: emails,
		logger: logger.With().Str("component", "booking_service").Logger(),
	}
}

// List returns the bookings the storefront calendar should block on.
// Failed-payment bookings are excluded: the conflict check on the write
// path skips them, so showing them would grey out dates the server would
// happily accept.
func (s *Service) List(ctx context.Context) ([]*Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings := make([]*Booking, 0, len(all))
	for _, b := range all {
		if b.Status == StatusPaymentFailed {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Create validates dates, normalizes a degenerate span to one night and
// persists the booking if the room is free. method decides the payment
// reference: pay-at-check-in bookings always record "COD".
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest, method Method) (*Booking, error) {
	checkin, err := dateutil.Parse(req.Checkin)
	if err != nil {
		return nil, fmt.Errorf("%w: checkin %q", ErrInvalidDates, req.Checkin)
	}
	checkout, err := dateutil.Parse(req.Checkout)
	if err != nil {
		return nil, fmt.Errorf("%w: checkout %q", ErrInvalidDates, req.Checkout)
	}

	// A stay shorter than one night snaps to checkin + 1 day, matching how
	// the date picker corrects a same-day or inverted selection.
	if dateutil.DaysBetween(checkin, checkout) < 1 {
		checkout = dateutil.AddDays(checkin, 1)
	}

	nights := int(req.Nights)
	if nights <= 0 {
		nights = dateutil.DaysBetween(checkin, checkout)
	}

	paymentID := req.PaymentID
	if method == MethodPayAtCheckin {
		paymentID = PayAtCheckinReference
	}

	b := &Booking{
		ID:         uuid.New(),
		RoomName:   req.RoomName,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		PostalCode: req.PostalCode,
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     int(req.Guests),
		Children:   int(req.Children),
		Nights:     nights,
		Price:      float64(req.Price),
		TotalPrice: req.totalPrice(),
		PaymentID:  paymentID,
		Method:     method,
		Status:     StatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", b.ID.String()).
		Str("roomname", b.RoomName).
		Str("method", string(b.Method)).
		Time("checkin", b.Checkin).
		Time("checkout", b.Checkout).
		Msg("booking created")

	s.sendConfirmation(b)

	return b, nil
}

// PaymentCaptured marks the booking for a gateway payment as confirmed.
// Returns false when no booking carries that payment id.
func (s *Service) PaymentCaptured(ctx context.Context, paymentID string) (bool, error) {
	return s.repo.UpdateStatusByPaymentID(ctx, paymentID, StatusConfirmed)
}

// PaymentFailed flags the booking so its dates stop blocking the calendar.
func (s *Service) PaymentFailed(ctx context.Context, paymentID string) (bool, error) {
	return s.repo.UpdateStatusByPaymentID(ctx, paymentID, StatusPaymentFailed)
}

func (s *Service) sendConfirmation(b *Booking) {
	if s.emails == nil || b.Email == "" {
		return
	}
	name := b.FirstName
	if b.LastName != "" {
		name = b.FirstName + " " + b.LastName
	}
	err := s.emails.SendTemplate(context.Background(), b.Email, name,
		email.TemplateBookingConfirmed, "Your booking is confirmed",
		email.BookingConfirmedData{
			GuestName:      name,
			RoomName:       b.RoomName,
			Checkin:        b.Checkin.Format("2 Jan 2006"),
			Checkout:       b.Checkout.Format("2 Jan 2006"),
			Nights:         b.Nights,
			Guests:         b.Guests,
			Children:       b.Children,
			TotalPrice:     strconv.FormatFloat(b.TotalPrice, 'f', -1, 64),
			IsPayAtCheckin: b.IsPayAtCheckin(),
			PaymentID:      b.PaymentID,
		})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("booking_id", b.ID.String()).
			Msg("failed to queue confirmation email")
	}
}
