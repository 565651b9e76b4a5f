// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client of the volunteer hub REST API.
//
// The primary abstraction is [ServerAdapter]. The HTTP implementation
// ([NewHTTPServerAdapter]) keeps the "jwt" session cookie in a cookie jar,
// so every call after Signup or Login is authenticated.
//
// Error envelopes returned by the server are mapped by mapHTTPError onto the
// sentinel values in errors.go so that callers can use [errors.Is] (e.g.
// [ErrEventFull] for a 409 with code EVENT_FULL).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

// ServerAdapter defines communication with the volunteer hub server.
type ServerAdapter interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, req models.SignupRequest) (models.UserView, error)

	// Login starts a session. The returned view carries the session token.
	Login(ctx context.Context, req models.LoginRequest) (models.UserView, error)

	// Logout ends the current session.
	Logout(ctx context.Context) error

	CurrentUser(ctx context.Context) (models.UserView, error)
	ListUsers(ctx context.Context) ([]models.UserView, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.ProfileView, error)

	ListEvents(ctx context.Context) ([]models.Event, error)
	ListOrganizedEvents(ctx context.Context) ([]models.Event, error)
	ListVolunteeredEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID string) (models.Event, error)
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Event, error)
	UpdateEventStatus(ctx context.Context, eventID string, status models.EventStatus) (models.Event, error)

	RegisterForEvent(ctx context.Context, eventID string, req models.RegisterRequest) error
	WithdrawFromEvent(ctx context.Context, eventID string) error
	ListApplications(ctx context.Context, eventID string) ([]models.Application, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
