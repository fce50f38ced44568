package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/aizah-hospitality/booking-api/internal/domain/availability"
)

// Status represents booking status
type Status string

const (
	StatusConfirmed     Status = "confirmed"
	StatusPaymentFailed Status = "payment_failed"
)

// Method represents how the guest pays
type Method string

const (
	MethodCard         Method = "card"
	MethodPayAtCheckin Method = "cod"
)

// PayAtCheckinReference is the literal payment reference the storefront
// has always recorded for pay-at-check-in bookings.
const PayAtCheckinReference = "COD"

// Booking is one persisted reservation. JSON names follow the storefront
// contract (fname/lname/night/totalPrice), not Go conventions.
type Booking struct {
	ID         uuid.UUID `db:"id" json:"_id"`
	RoomName   string    `db:"roomname" json:"roomname"`
	FirstName  string    `db:"fname" json:"fname,omitempty"`
	LastName   string    `db:"lname" json:"lname,omitempty"`
	Email      string    `db:"email" json:"email,omitempty"`
	Phone      string    `db:"phone" json:"phone,omitempty"`
	City       string    `db:"city" json:"city,omitempty"`
	PostalCode string    `db:"code" json:"code,omitempty"`
	Checkin    time.Time `db:"checkin" json:"checkin"`
	Checkout   time.Time `db:"checkout" json:"checkout"`
	Guests     int       `db:"guests" json:"guests"`
	Children   int       `db:"children" json:"children"`
	Nights     int       `db:"night" json:"night"`
	Price      float64   `db:"price" json:"price"`
	TotalPrice float64   `db:"totalprice" json:"totalPrice"`
	PaymentID  string    `db:"payment_id" json:"paymentID,omitempty"`
	Method     Method    `db:"method" json:"method"`
	Status     Status    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Interval returns the reservation's blocking span.
func (b *Booking) Interval() availability.Interval {
	return availability.Interval{Checkin: b.Checkin, Checkout: b.Checkout}
}

// IsPayAtCheckin reports whether settlement is deferred to arrival.
func (b *Booking) IsPayAtCheckin() bool {
	return b.Method == MethodPayAtCheckin
}
