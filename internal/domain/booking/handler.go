package booking

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/razorpay"
	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
	"github.com/aizah-hospitality/booking-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service       *Service
	payments      *razorpay.Client
	webhookSecret string
	logger        zerolog.Logger
}

func NewHandler(service *Service, payments *razorpay.Client, webhookSecret string, logger zerolog.Logger) *Handler {
	return &Handler{
		service:       service,
		payments:      payments,
		webhookSecret: webhookSecret,
		logger:        logger.With().Str("component", "booking_handler").Logger(),
	}
}

// CheckoutView handles GET /api/chekoutview. The storefront polls this
// every few seconds and filters by room name client-side, so the shape
// is the bare {"data": [...]} it has always consumed.
func (h *Handler) CheckoutView(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list bookings")
		response.InternalError(w)
		return
	}
	if bookings == nil {
		bookings = []*Booking{}
	}
	response.Raw(w, http.StatusOK, CheckoutViewResponse{Data: bookings})
}

// Checkout handles POST /api/checkout: card payments, posted after the
// gateway reports success client-side.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, MethodCard)
}

// CheckoutSubmit handles POST /api/checkoutSubmit: pay-at-check-in.
func (h *Handler) CheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, MethodPayAtCheckin)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, method Method) {
	var req CreateBookingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.service.Create(r.Context(), &req, method)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrDatesConflict):
			response.Conflict(w, ErrDatesConflict.Error())
		default:
			h.logger.Error().Err(err).Str("roomname", req.RoomName).Msg("failed to create booking")
			response.InternalError(w)
		}
		return
	}

	response.Raw(w, http.StatusCreated, map[string]interface{}{"data": b})
}

type createOrderRequest struct {
	Amount   FlexFloat `json:"amount"`
	Currency string    `json:"currency"`
	Receipt  string    `json:"receipt"`
}

// CreateOrder handles POST /api/checkout/order: creates a gateway order
// for the stay total so the hosted checkout can collect against it.
// Amount arrives in currency units and is converted to the smallest unit.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if h.payments == nil {
		response.Error(w, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE", "Card payments are not configured")
		return
	}

	var req createOrderRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Amount <= 0 {
		response.BadRequest(w, "Amount must be greater than zero")
		return
	}

	order, err := h.payments.CreateOrder(r.Context(), razorpay.CreateOrderRequest{
		Amount:   int64(math.Round(float64(req.Amount) * 100)),
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create gateway order")
		response.Error(w, http.StatusBadGateway, "GATEWAY_ERROR", "Failed to create payment order")
		return
	}

	response.OK(w, order)
}

// webhookEvent is the subset of the gateway's webhook payload we act on.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Webhook handles POST /webhooks/razorpay. Signature is verified over the
// raw body before any parsing. Unknown events and unknown payment ids are
// acknowledged with 200 so the gateway stops retrying.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Failed to read request body")
		return
	}
	defer r.Body.Close()

	signature := r.Header.Get("X-Razorpay-Signature")
	if !razorpay.VerifyWebhookSignature(body, signature, h.webhookSecret) {
		h.logger.Warn().Msg("webhook signature verification failed")
		response.BadRequest(w, "Invalid webhook signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.BadRequest(w, "Invalid webhook payload")
		return
	}

	paymentID := event.Payload.Payment.Entity.ID
	var matched bool
	switch event.Event {
	case "payment.captured":
		matched, err = h.service.PaymentCaptured(r.Context(), paymentID)
	case "payment.failed":
		matched, err = h.service.PaymentFailed(r.Context(), paymentID)
	default:
		h.logger.Debug().Str("event", event.Event).Msg("ignoring webhook event")
		response.Raw(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("payment_id", paymentID).Msg("failed to apply webhook")
		response.InternalError(w)
		return
	}
	if !matched {
		h.logger.Warn().
			Str("event", event.Event).
			Str("payment_id", paymentID).
			Msg("webhook for unknown payment id")
	}

	response.Raw(w, http.StatusOK, map[string]string{"status": "ok"})
}
