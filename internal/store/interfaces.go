package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts (the Credential Store).
type UserRepository interface {
	// CreateUser inserts user and returns it with CreatedAt filled in.
	// Fails with ErrUsernameTaken when the username is in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID, FindUserByUsername and FindUserByEmail return
	// ErrUserNotFound when nothing matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsers returns every user except exceptUserID, ordered by signup.
	ListUsers(ctx context.Context, exceptUserID string) ([]models.User, error)

	// UpdateUser applies patch in one statement and returns the stored user.
	UpdateUser(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error)
}

// EventRepository persists events and their volunteer rosters (the Event
// Registry).
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	// UpdateEventStatus moves the event from status from to status to.
	// Fails with ErrStatusChanged when the stored status is no longer from.
	UpdateEventStatus(ctx context.Context, eventID string, from, to models.EventStatus) (models.Event, error)

	// RegisterVolunteer appends application.UserID to the roster and stores
	// the application atomically.
	RegisterVolunteer(ctx context.Context, application models.Application) (models.Event, error)

	// WithdrawVolunteer removes userID from the roster together with the
	// stored application.
	WithdrawVolunteer(ctx context.Context, eventID, userID string) (models.Event, error)

	// ListApplications returns the applications of an event in roster order.
	ListApplications(ctx context.Context, eventID string) ([]models.Application, error)
}

// TokenDenylist keeps ids of revoked session tokens until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ImageStorage keeps uploaded event images in object storage.
type ImageStorage interface {
	PutImage(ctx context.Context, key string, image models.EventImage) error
	GetImage(ctx context.Context, key string) (models.ImageObject, error)
}

// ErrorClassificator tells transient database errors from permanent ones.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
