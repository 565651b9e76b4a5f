// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// volunteer hub handlers and API client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// between the server and the clients that display it.
package app

const (
	// MsgLoggedOut confirms POST /api/users/logout.
	MsgLoggedOut = "Logged out successfully"

	// MsgProfileUpdated accompanies the profile returned by
	// PUT /api/users/update.
	MsgProfileUpdated = "Profile updated successfully"

	// MsgRegisteredForEvent confirms POST /api/events/{id}/register.
	MsgRegisteredForEvent = "Successfully registered for event"

	// MsgWithdrawnFromEvent confirms DELETE /api/events/{id}/register.
	MsgWithdrawnFromEvent = "Successfully withdrawn from event"

	// MsgInternalServerError replaces the text of every unexpected error
	// before it reaches the client.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for paths no route matches.
	MsgRouteNotFound = "route not found"
)
