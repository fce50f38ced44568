package pricing

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
	"github.com/aizah-hospitality/booking-api/internal/pkg/validator"
)

// RoomLookup resolves a storefront room reference (slug or id) to a room id.
type RoomLookup interface {
	Lookup(ctx context.Context, slugOrID string) (uuid.UUID, error)
}

// Handler handles pricing HTTP requests
type Handler struct {
	service *Service
	rooms   RoomLookup
}

// NewHandler creates pricing handler
func NewHandler(service *Service, rooms RoomLookup) *Handler {
	return &Handler{service: service, rooms: rooms}
}

// PriceView handles GET /api/priceView/{roomID}.
// Response shape is the storefront contract: {"prices": {...}} with month
// keys jan..dec; no envelope.
func (h *Handler) PriceView(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "roomID")

	roomID, err := h.rooms.Lookup(r.Context(), ref)
	if err != nil {
		response.NotFound(w, "Room not found")
		return
	}

	table, err := h.service.GetTable(r.Context(), roomID)
	if err != nil {
		log.Error().Err(err).Str("room", ref).Msg("Failed to load price table")
		response.InternalError(w)
		return
	}

	response.Raw(w, http.StatusOK, PriceViewResponse{Prices: table})
}

// UpdateBasePrices handles PUT /api/admin/prices/{roomID}
func (h *Handler) UpdateBasePrices(w http.ResponseWriter, r *http.Request) {
	roomID, err := h.rooms.Lookup(r.Context(), chi.URLParam(r, "roomID"))
	if err != nil {
		response.NotFound(w, "Room not found")
		return
	}

	var req UpdateBasePricesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := h.service.ReplaceBasePrices(r.Context(), roomID, req.asArray()); err != nil {
		log.Error().Err(err).Msg("Failed to update base prices")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}

// AddRange handles POST /api/admin/prices/{roomID}/ranges
func (h *Handler) AddRange(w http.ResponseWriter, r *http.Request) {
	roomID, err := h.rooms.Lookup(r.Context(), chi.URLParam(r, "roomID"))
	if err != nil {
		response.NotFound(w, "Room not found")
		return
	}

	var req AddRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		response.BadRequest(w, "Invalid startDate")
		return
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		response.BadRequest(w, "Invalid endDate")
		return
	}
	if end.Before(start) {
		response.BadRequest(w, "endDate must not be before startDate")
		return
	}

	rng := &Range{StartDate: start, EndDate: end, Price: req.Price}
	if err := h.service.AddRange(r.Context(), roomID, monthIndex(req.Month), rng); err != nil {
		log.Error().Err(err).Msg("Failed to add price range")
		response.InternalError(w)
		return
	}

	response.Created(w, rng)
}

// DeleteRange handles DELETE /api/admin/prices/{roomID}/ranges/{rangeID}
func (h *Handler) DeleteRange(w http.ResponseWriter, r *http.Request) {
	roomID, err := h.rooms.Lookup(r.Context(), chi.URLParam(r, "roomID"))
	if err != nil {
		response.NotFound(w, "Room not found")
		return
	}

	rangeID, err := uuid.Parse(chi.URLParam(r, "rangeID"))
	if err != nil {
		response.BadRequest(w, "Invalid range id")
		return
	}

	if err := h.service.DeleteRange(r.Context(), roomID, rangeID); err != nil {
		if err == ErrRangeNotFound {
			response.NotFound(w, "Price range not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete price range")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
