package http

import (
	"net/http"

	"github.com/MKhiriev/go-volunteer-hub/internal/app"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	users, err := h.services.AuthService.ListOthers(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// currentUser returns the session user. A userId in the body is only
// compared with the session identity.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.CurrentUserRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}
	if req.UserID != "" && req.UserID != userID {
		writeError(w, r, ErrSessionMismatch)
		return
	}

	user, err := h.services.AuthService.GetCurrentUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.AuthService.UpdateProfile(ctx, userID, req.Patch())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Message: app.MsgProfileUpdated,
		User:    profile,
	}, http.StatusOK)
}
