package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aizah-hospitality/booking-api/internal/pkg/jwt"
	"github.com/aizah-hospitality/booking-api/internal/pkg/password"
	"github.com/aizah-hospitality/booking-api/internal/pkg/response"
	"github.com/aizah-hospitality/booking-api/internal/pkg/validator"
)

// Handler handles admin authentication. There is a single operator
// account defined by config; no user table.
type Handler struct {
	jwtService   *jwt.Service
	email        string
	passwordHash string
	logger       zerolog.Logger
}

func NewHandler(jwtService *jwt.Service, email, passwordHash string, logger zerolog.Logger) *Handler {
	return &Handler{
		jwtService:   jwtService,
		email:        email,
		passwordHash: passwordHash,
		logger:       logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Login handles POST /api/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.email)) == 1
	if !emailOK || !password.Verify(req.Password, h.passwordHash) {
		h.logger.Warn().Str("email", req.Email).Msg("failed admin login attempt")
		response.Unauthorized(w, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateAccessToken(h.email)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to generate access token")
		response.InternalError(w)
		return
	}

	response.OK(w, LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(h.jwtService.GetAccessTTL().Seconds()),
	})
}
