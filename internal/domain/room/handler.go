package room

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
)

// Handler handles room HTTP requests
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "room_handler").Logger(),
	}
}

// List handles GET /api/rooms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list rooms")
		response.InternalError(w)
		return
	}
	if rooms == nil {
		rooms = []*Room{}
	}
	response.OK(w, rooms)
}
