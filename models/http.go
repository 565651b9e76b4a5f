package models

import "time"

// SignupRequest is the body of POST /api/users/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/users/update.
// Only non-nil fields are applied.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Patch converts the request into a ProfilePatch. Empty strings are
// treated as "not provided", the same way the UI sends untouched inputs.
func (r UpdateProfileRequest) Patch() ProfilePatch {
	var patch ProfilePatch
	if r.Username != nil && *r.Username != "" {
		patch.Username = r.Username
	}
	if r.Email != nil && *r.Email != "" {
		patch.Email = r.Email
	}
	return patch
}

// CurrentUserRequest is the optional body of POST /api/users/curr.
// The identity always comes from the session; UserID is only compared
// against it.
type CurrentUserRequest struct {
	UserID string `json:"userId,omitempty"`
}

// CreateEventRequest describes a new event. It is decoded either from a
// JSON body or from multipart form fields of the same names.
type CreateEventRequest struct {
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	Location           string        `json:"location"`
	Category           EventCategory `json:"category"`
	Impact             string        `json:"impact"`
	Date               time.Time     `json:"date"`
	RequiredVolunteers int           `json:"requiredVolunteers"`
}

// UpdateEventStatusRequest is the body of PUT /api/events/{id}/status.
type UpdateEventStatusRequest struct {
	Status EventStatus `json:"status"`
}

// RegisterRequest is the optional application detail sent with
// POST /api/events/{id}/register.
type RegisterRequest struct {
	Skills       string       `json:"skills"`
	Experience   string       `json:"experience"`
	Motivation   string       `json:"motivation"`
	Availability Availability `json:"availability"`
}
