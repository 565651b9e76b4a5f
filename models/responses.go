package models

// ErrorResponse is the envelope of every 4xx/5xx response.
type ErrorResponse struct {
	// Error is a short human readable message.
	Error string `json:"error"`

	// Code is a stable machine readable error code (e.g. "EVENT_FULL").
	Code string `json:"code"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps list and item payloads of the event endpoints.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// ProfileResponse is returned by PUT /api/users/update.
type ProfileResponse struct {
	Message string      `json:"message"`
	User    ProfileView `json:"user"`
}
