package booking

// CreateBookingRequest is the payload both storefront surfaces post.
// The booking widget sends room/dates/counts only; the checkout page adds
// the billing contact and a gateway payment id. Field names are the wire
// contract and must not change.
type CreateBookingRequest struct {
	RoomName   string `json:"roomname" validate:"required"`
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	PostalCode string `json:"code"`
	Email      string `json:"email" validate:"omitempty,email"`
	Checkin    string `json:"checkin" validate:"required"`
	Checkout   string `json:"checkout" validate:"required"`

	Guests   FlexInt `json:"guests"`
	Children FlexInt `json:"children"`
	Nights   FlexInt `json:"night"`

	Price FlexFloat `json:"price"`
	// The widget spells it totalPrice, the checkout page totalprice.
	TotalPrice    FlexFloat `json:"totalprice"`
	TotalPriceAlt FlexFloat `json:"totalPrice"`

	PaymentID string `json:"paymentID"`
}

func (r *CreateBookingRequest) totalPrice() float64 {
	if r.TotalPrice != 0 {
		return float64(r.TotalPrice)
	}
	return float64(r.TotalPriceAlt)
}

// CheckoutViewResponse is the storefront contract for GET /api/chekoutview.
type CheckoutViewResponse struct {
	Data []*Booking `json:"data"`
}
