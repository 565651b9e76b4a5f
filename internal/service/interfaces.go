package service

import (
	"context"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue signs a new session token for userID.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify checks signature, issuer and expiry of tokenString. It does not
	// consult the denylist.
	Verify(ctx context.Context, tokenString string) (models.Token, error)

	// Revoke puts token on the denylist until it expires.
	Revoke(ctx context.Context, token models.Token) error

	// IsRevoked reports whether token was revoked by a logout.
	IsRevoked(ctx context.Context, token models.Token) (bool, error)
}

// AuthService implements the account operations.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.UserView, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.UserView, models.Token, error)

	// Logout revokes tokenString when it is still valid. It never fails on
	// a missing or invalid token.
	Logout(ctx context.Context, tokenString string) error

	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (models.ProfileView, error)
	GetCurrentUser(ctx context.Context, userID string) (models.UserView, error)
	ListOthers(ctx context.Context, userID string) ([]models.UserView, error)
}

// EventService implements event management and volunteer registration.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, req models.CreateEventRequest, image *models.EventImage) (models.Event, error)
	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListOrganized(ctx context.Context, userID string) ([]models.Event, error)
	ListVolunteered(ctx context.Context, userID string) ([]models.Event, error)
	UpdateStatus(ctx context.Context, organizerID, eventID string, status models.EventStatus) (models.Event, error)

	Register(ctx context.Context, eventID, userID string, req models.RegisterRequest) (models.Event, error)
	Withdraw(ctx context.Context, eventID, userID string) (models.Event, error)
	ListApplications(ctx context.Context, organizerID, eventID string) ([]models.Application, error)

	// GetEventImage opens the stored image of eventID. The caller closes
	// the returned body.
	GetEventImage(ctx context.Context, eventID string) (models.ImageObject, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
