package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	ErrEventFull               = errors.New("event is full")
	ErrEventClosed             = errors.New("event is closed")
	ErrAlreadyRegistered       = errors.New("already registered")
	ErrNotRegistered           = errors.New("not registered")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
