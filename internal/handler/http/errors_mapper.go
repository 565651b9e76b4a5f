package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-volunteer-hub/internal/app"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/service"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

// Machine readable error codes of the error envelope.
const (
	codeBadRequest              = "BAD_REQUEST"
	codeConflict                = "CONFLICT"
	codeInvalidCredentials      = "INVALID_CREDENTIALS"
	codeUnauthorized            = "UNAUTHORIZED"
	codeForbidden               = "FORBIDDEN"
	codeNotFound                = "NOT_FOUND"
	codeEventFull               = "EVENT_FULL"
	codeEventClosed             = "EVENT_CLOSED"
	codeAlreadyRegistered       = "ALREADY_REGISTERED"
	codeNotRegistered           = "NOT_REGISTERED"
	codeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"
	codeInternal                = "INTERNAL"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, codeBadRequest},
	{ErrInvalidForm, http.StatusBadRequest, codeBadRequest},
	{ErrImageTooLarge, http.StatusBadRequest, codeBadRequest},
	{ErrBodyTooLarge, http.StatusBadRequest, codeBadRequest},
	{ErrSessionMismatch, http.StatusForbidden, codeForbidden},

	{service.ErrBadRequest, http.StatusBadRequest, codeBadRequest},
	{service.ErrConflict, http.StatusConflict, codeConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, codeInvalidCredentials},
	{service.ErrForbidden, http.StatusForbidden, codeForbidden},
	{service.ErrNotFound, http.StatusNotFound, codeNotFound},

	{service.ErrTokenMissing, http.StatusUnauthorized, codeUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized, codeUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized, codeUnauthorized},
	{service.ErrTokenRevoked, http.StatusUnauthorized, codeUnauthorized},

	{service.ErrEventFull, http.StatusConflict, codeEventFull},
	{service.ErrEventClosed, http.StatusConflict, codeEventClosed},
	{service.ErrAlreadyRegistered, http.StatusConflict, codeAlreadyRegistered},
	{service.ErrNotRegistered, http.StatusConflict, codeNotRegistered},
	{service.ErrInvalidStatusTransition, http.StatusConflict, codeInvalidStatusTransition},
}

// mapError returns the status, code and client message for err. Errors
// without a mapping become 500 INTERNAL and their text is not exposed.
func mapError(err error) (int, string, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := strings.TrimPrefix(err.Error(), m.target.Error()+": ")
			return m.status, m.code, message
		}
	}
	return http.StatusInternalServerError, codeInternal, app.MsgInternalServerError
}

// writeError writes the error envelope for err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, code, message := mapError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Str("code", code).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: code}, status)
}

// writeStatus writes the error envelope with an explicit status and code.
func writeStatus(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	logger.FromRequest(r).Debug().Int("status", status).Str("code", code).Msg(message)
	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: code}, status)
}
