package gatewaykey

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
	"github.com/aizah-hospitality/booking-api/internal/pkg/validator"
)

// Handler handles gateway key HTTP requests
type Handler struct {
	repo   Repository
	logger zerolog.Logger
}

func NewHandler(repo Repository, logger zerolog.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger.With().Str("component", "gatewaykey_handler").Logger(),
	}
}

// KeyView handles GET /api/keyview. The checkout page reads data[0].key,
// so the raw {"data": [...]} shape is the contract.
func (h *Handler) KeyView(w http.ResponseWriter, r *http.Request) {
	keys, err := h.repo.ListActive(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list gateway keys")
		response.InternalError(w)
		return
	}
	if keys == nil {
		keys = []*Key{}
	}
	response.Raw(w, http.StatusOK, map[string]interface{}{"data": keys})
}

type createKeyRequest struct {
	Key string `json:"key" validate:"required"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createKeyRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	k, err := h.repo.Create(r.Context(), req.Key)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create gateway key")
		response.InternalError(w)
		return
	}
	response.Created(w, k)
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "keyID"))
	if err != nil {
		response.BadRequest(w, "Invalid key id")
		return
	}
	if err := h.repo.Deactivate(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Msg("failed to deactivate gateway key")
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}

// AdminRoutes returns the key management router, mounted under
// /api/admin/keys behind the admin JWT middleware.
func (h *Handler) AdminRoutes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Post("/", h.Create)
	r.Delete("/{keyID}", h.Deactivate)

	return r
}
