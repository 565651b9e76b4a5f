package http

import (
	"net/http"

	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/service"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
)

// authorize is the route guard of every protected endpoint.
//
// It takes the session token from the "jwt" cookie (or an
// "Authorization: Bearer" header), verifies it via
// [service.TokenService.Verify] and checks that it was not revoked by a
// logout. On success the verified token and its user id are stored in the
// request context (see [utils.WithSession]) before delegating to next.
//
// Any failure is answered with 401 and the error envelope; next never runs.
// A denylist that cannot be reached also rejects the request.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		token, err := h.services.TokenService.Verify(ctx, sessionToken(r))
		if err != nil {
			writeError(w, r, err)
			return
		}

		revoked, err := h.services.TokenService.IsRevoked(ctx, token)
		if err != nil {
			log.Err(err).Str("user_id", token.UserID).Msg("failed to check token revocation")
			writeError(w, r, service.ErrTokenInvalid)
			return
		}
		if revoked {
			writeError(w, r, service.ErrTokenRevoked)
			return
		}

		rememberUser(r, token.UserID)
		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, token)))
	})
}
