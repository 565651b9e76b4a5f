package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-volunteer-hub/internal/app"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, user, http.StatusOK)
}

// logout is public: it clears the cookie whether or not the session is
// still valid, and revokes the token when it is.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context(), sessionToken(r)); err != nil {
		logger.FromRequest(r).Err(err).Msg("logout failed")
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

// maxJSONBody caps every JSON request body.
const maxJSONBody = 1 << 20

// decodeJSON decodes at most maxJSONBody bytes of the request body into
// dst. With optional set, an empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, optional ...bool) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dst)
	if errors.Is(err, io.EOF) && len(optional) > 0 && optional[0] {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
