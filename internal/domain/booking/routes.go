package booking

import (
	"github.com/go-chi/chi/v5"
)

// WebhookRoutes returns the payment gateway callback router, mounted
// under /webhooks outside the /api surface.
func (h *Handler) WebhookRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/razorpay", h.Webhook)
	return r
}
