package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/razorpay"
)

const testWebhookSecret = "whsec_test"

func newTestHandler(repo Repository) *Handler {
	svc := NewService(repo, nil, zerolog.Nop())
	return NewHandler(svc, nil, testWebhookSecret, zerolog.Nop())
}

func TestCheckoutViewShape(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []*Booking{
		{
			RoomName:   "Dubai Mall Residence",
			Checkin:    time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Checkout:   time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC),
			TotalPrice: 600,
			Status:     StatusConfirmed,
		},
	}
	h := newTestHandler(repo)

	w := httptest.NewRecorder()
	h.CheckoutView(w, httptest.NewRequest(http.MethodGet, "/api/chekoutview", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(got.Data) != 1 {
		t.Fatalf("data length = %d", len(got.Data))
	}
	row := got.Data[0]
	if row["roomname"] != "Dubai Mall Residence" {
		t.Fatalf("roomname = %v", row["roomname"])
	}
	// The poller reads totalPrice with a capital P.
	if _, ok := row["totalPrice"]; !ok {
		t.Fatal("missing totalPrice field")
	}
	if _, ok := row["checkin"]; !ok {
		t.Fatal("missing checkin field")
	}
}

func TestCheckoutViewExcludesFailedPayments(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []*Booking{
		{
			RoomName: "Dubai Mall Residence",
			Checkin:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Checkout: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
			Status:   StatusConfirmed,
		},
		{
			RoomName:  "Dubai Mall Residence",
			Checkin:   time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
			Checkout:  time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
			PaymentID: "pay_failed",
			Status:    StatusPaymentFailed,
		},
	}
	h := newTestHandler(repo)

	w := httptest.NewRecorder()
	h.CheckoutView(w, httptest.NewRequest(http.MethodGet, "/api/chekoutview", nil))

	var got struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	// A failed-payment booking must not grey out its dates in the widget.
	if len(got.Data) != 1 {
		t.Fatalf("data length = %d, want 1", len(got.Data))
	}
	if got.Data[0]["status"] != string(StatusConfirmed) {
		t.Fatalf("status = %v", got.Data[0]["status"])
	}
}

func TestCheckoutViewEmptyList(t *testing.T) {
	h := newTestHandler(newFakeRepo())

	w := httptest.NewRecorder()
	h.CheckoutView(w, httptest.NewRequest(http.MethodGet, "/api/chekoutview", nil))

	body := strings.TrimSpace(w.Body.String())
	if body != `{"data":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestCheckoutAcceptsStringNumerics(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo)

	// The checkout page forwards query params verbatim, so numerics are strings.
	payload := `{
		"roomname": "Merano Tower 29",
		"fname": "Aman", "lname": "Seitkali",
		"email": "aman@example.com",
		"phone": "+77010000000", "city": "Dubai", "code": "00000",
		"checkin": "2-Jan-2026", "checkout": "5-Jan-2026",
		"guests": "2", "children": "0", "night": "3",
		"price": "200", "totalprice": "600",
		"paymentID": "pay_NvX7qA1"
	}`

	w := httptest.NewRecorder()
	h.Checkout(w, httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(payload)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	b := repo.lastCreate
	if b == nil {
		t.Fatal("booking was not persisted")
	}
	if b.Guests != 2 || b.Nights != 3 || b.TotalPrice != 600 {
		t.Fatalf("guests=%d nights=%d total=%v", b.Guests, b.Nights, b.TotalPrice)
	}
	if b.Method != MethodCard {
		t.Fatalf("method = %q", b.Method)
	}
}

func TestCheckoutSubmitWidgetPayload(t *testing.T) {
	repo := newFakeRepo()
	h := newTestHandler(repo)

	// The widget posts numbers and spells total with a capital P.
	payload := `{
		"roomname": "Dubai Mall Residence",
		"checkin": "2026-07-10T00:00:00.000Z",
		"checkout": "2026-07-12T00:00:00.000Z",
		"guests": 2, "children": 1,
		"price": 300, "totalPrice": 600
	}`

	w := httptest.NewRecorder()
	h.CheckoutSubmit(w, httptest.NewRequest(http.MethodPost, "/api/checkoutSubmit", strings.NewReader(payload)))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	b := repo.lastCreate
	if b.TotalPrice != 600 {
		t.Fatalf("total = %v", b.TotalPrice)
	}
	if b.PaymentID != PayAtCheckinReference {
		t.Fatalf("payment id = %q", b.PaymentID)
	}
}

func TestCheckoutValidation(t *testing.T) {
	h := newTestHandler(newFakeRepo())

	tests := []struct {
		name    string
		payload string
		status  int
	}{
		{"missing roomname", `{"checkin":"2026-07-10","checkout":"2026-07-12"}`, http.StatusUnprocessableEntity},
		{"bad email", `{"roomname":"r","checkin":"2026-07-10","checkout":"2026-07-12","email":"nope"}`, http.StatusUnprocessableEntity},
		{"bad checkin date", `{"roomname":"r","checkin":"garbage","checkout":"2026-07-12"}`, http.StatusBadRequest},
		{"not json", `<html>`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Checkout(w, httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(tt.payload)))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.status, w.Body.String())
			}
		})
	}
}

func TestCheckoutConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = ErrDatesConflict
	h := newTestHandler(repo)

	payload := `{"roomname":"Dubai Mall Residence","checkin":"2026-07-10","checkout":"2026-07-12"}`
	w := httptest.NewRecorder()
	h.Checkout(w, httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(payload)))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCreateOrderConvertsToSmallestUnit(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad order request: %v", err)
		}
		if req.Amount != 60000 {
			t.Fatalf("amount = %d, want 60000 paise", req.Amount)
		}
		w.Write([]byte(`{"id":"order_abc","amount":60000,"currency":"INR","status":"created"}`))
	}))
	defer gateway.Close()

	payments := razorpay.NewClient(razorpay.Config{
		BaseURL:   gateway.URL,
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
	})
	svc := NewService(newFakeRepo(), nil, zerolog.Nop())
	h := NewHandler(svc, payments, testWebhookSecret, zerolog.Nop())

	w := httptest.NewRecorder()
	h.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/api/checkout/order",
		strings.NewReader(`{"amount":"600"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.ID != "order_abc" {
		t.Fatalf("order id = %q", resp.Data.ID)
	}
}

func TestCreateOrderWithoutGateway(t *testing.T) {
	h := newTestHandler(newFakeRepo())

	w := httptest.NewRecorder()
	h.CreateOrder(w, httptest.NewRequest(http.MethodPost, "/api/checkout/order",
		strings.NewReader(`{"amount":600}`)))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}
}

func webhookRequest(t *testing.T, body string, sign bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/razorpay", strings.NewReader(body))
	if sign {
		req.Header.Set("X-Razorpay-Signature", razorpay.Sign([]byte(body), testWebhookSecret))
	} else {
		req.Header.Set("X-Razorpay-Signature", "deadbeef")
	}
	return req
}

func TestWebhookPaymentFailed(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []*Booking{{PaymentID: "pay_abc", Status: StatusConfirmed}}
	h := newTestHandler(repo)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_abc"}}}}`
	w := httptest.NewRecorder()
	h.Webhook(w, webhookRequest(t, body, true))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.bookings[0].Status != StatusPaymentFailed {
		t.Fatalf("status = %q", repo.bookings[0].Status)
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []*Booking{{PaymentID: "pay_abc", Status: StatusConfirmed}}
	h := newTestHandler(repo)

	body := `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_abc"}}}}`
	w := httptest.NewRecorder()
	h.Webhook(w, webhookRequest(t, body, false))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if repo.bookings[0].Status != StatusConfirmed {
		t.Fatal("booking must not change on a bad signature")
	}
}

func TestWebhookIgnoresUnknownEvent(t *testing.T) {
	h := newTestHandler(newFakeRepo())

	body := `{"event":"order.paid","payload":{}}`
	w := httptest.NewRecorder()
	h.Webhook(w, webhookRequest(t, body, true))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestWebhookUnknownPaymentStillAcks(t *testing.T) {
	h := newTestHandler(newFakeRepo())

	body := `{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_missing"}}}}`
	w := httptest.NewRecorder()
	h.Webhook(w, webhookRequest(t, body, true))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
