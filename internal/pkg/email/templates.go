package email

// TemplateBookingConfirmed names the template passed to SendTemplate.
const TemplateBookingConfirmed = "booking_confirmed"

// BookingConfirmedData fills BookingConfirmedTemplate.
type BookingConfirmedData struct {
	GuestName      string
	RoomName       string
	Checkin        string
	Checkout       string
	Nights         int
	Guests         int
	Children       int
	TotalPrice     string
	IsPayAtCheckin bool
	PaymentID      string
}

// BookingConfirmedTemplate is sent after a booking row is written. Payment
// method decides the footer line: card bookings reference the gateway
// payment id, pay-at-check-in bookings state that payment is due on arrival.
const BookingConfirmedTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #32548E;">Your booking is confirmed</h2>
  <p>Dear {{.GuestName}},</p>
  <p>Thank you for booking with Aizah Hospitality. Here are your stay details:</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0;"><strong>Property</strong></td><td>{{.RoomName}}</td></tr>
    <tr><td style="padding: 6px 0;"><strong>Check-in</strong></td><td>{{.Checkin}}</td></tr>
    <tr><td style="padding: 6px 0;"><strong>Check-out</strong></td><td>{{.Checkout}}</td></tr>
    <tr><td style="padding: 6px 0;"><strong>Nights</strong></td><td>{{.Nights}}</td></tr>
    <tr><td style="padding: 6px 0;"><strong>Guests</strong></td><td>{{.Guests}} adults, {{.Children}} children</td></tr>
    <tr><td style="padding: 6px 0;"><strong>Total</strong></td><td>{{.TotalPrice}}</td></tr>
  </table>
  {{if .IsPayAtCheckin}}
  <p>Payment is due at check-in.</p>
  {{else}}
  <p>Payment reference: {{.PaymentID}}</p>
  {{end}}
  <p style="color: #888; font-size: 12px;">Aizah Hospitality</p>
</div>
`
