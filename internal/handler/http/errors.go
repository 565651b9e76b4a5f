// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors produced while decoding requests. All of them map to 400.
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON
	// for the expected request type.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a multipart event form cannot be
	// parsed or one of its fields has the wrong format.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrBodyTooLarge is returned when a JSON body exceeds maxJSONBody.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrImageTooLarge is returned when the uploaded event image exceeds
	// maxImageSize.
	ErrImageTooLarge = errors.New("image is too large")

	// ErrSessionMismatch is returned by /api/users/curr when the body names
	// a different user than the session.
	ErrSessionMismatch = errors.New("user id does not match the session")
)
