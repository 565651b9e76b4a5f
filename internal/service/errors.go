package service

import "errors"

// Errors returned by the services. The HTTP layer maps each of them to a
// status code and a machine readable error code.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")

	ErrTokenMissing        = errors.New("no token provided")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenRevoked        = errors.New("token is revoked")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrEventFull               = errors.New("event is full")
	ErrEventClosed             = errors.New("event is not accepting volunteers")
	ErrAlreadyRegistered       = errors.New("already registered for this event")
	ErrNotRegistered           = errors.New("not registered for this event")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrImagesDisabled          = errors.New("event images are disabled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
