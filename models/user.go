package models

import "time"

// Role is the account type chosen at signup.
type Role string

const (
	// RoleVolunteer users join events created by organizers.
	RoleVolunteer Role = "volunteer"

	// RoleOrganizer users create and manage events.
	RoleOrganizer Role = "organizer"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleOrganizer
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID string).
	UserID string `json:"_id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role is either volunteer or organizer.
	Role Role `json:"role"`

	// RegisteredEvents holds ids of events the user joined as a volunteer,
	// in registration order.
	RegisteredEvents []string `json:"registeredEvents"`

	// CreatedEvents holds ids of events organized by the user.
	CreatedEvents []string `json:"createdEvents"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// View returns the public representation of u without the password hash.
func (u User) View() UserView {
	registered := u.RegisteredEvents
	if registered == nil {
		registered = []string{}
	}
	created := u.CreatedEvents
	if created == nil {
		created = []string{}
	}

	return UserView{
		UserID:           u.UserID,
		Username:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		RegisteredEvents: registered,
		CreatedEvents:    created,
		CreatedAt:        u.CreatedAt,
	}
}

// UserView is the user shape returned by every user endpoint.
type UserView struct {
	UserID           string    `json:"_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	RegisteredEvents []string  `json:"registeredEvents"`
	CreatedEvents    []string  `json:"createdEvents"`
	CreatedAt        time.Time `json:"createdAt"`

	// Token carries the issued session token for clients that cannot read
	// the HTTP-only cookie. Set only by signup and login.
	Token string `json:"token,omitempty"`
}

// ProfileView is the dashboard representation of a user with the joined
// and organized events expanded to summaries.
type ProfileView struct {
	UserID           string         `json:"_id"`
	Username         string         `json:"username"`
	Email            string         `json:"email"`
	Role             Role           `json:"role"`
	RegisteredEvents []EventSummary `json:"registeredEvents"`
	CreatedEvents    []EventSummary `json:"createdEvents"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// ProfilePatch lists the user fields that may change on a profile update.
// Nil fields are left untouched.
type ProfilePatch struct {
	Username *string
	Email    *string
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Username == nil && p.Email == nil
}
