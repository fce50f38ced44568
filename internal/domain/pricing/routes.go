package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes returns the price management router, mounted under
// /api/admin/prices behind the admin JWT middleware.
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Put("/{roomID}", h.UpdateBasePrices)
	r.Post("/{roomID}/ranges", h.AddRange)
	r.Delete("/{roomID}/ranges/{rangeID}", h.DeleteRange)

	return r
}
