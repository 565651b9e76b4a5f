// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before the services act on
// them.
//
// A Validator validates the whole value by default. Passing field names
// restricts the check to those fields, e.g. only FieldEmail of a
// ProfilePatch.
package validators

import "context"

// Validator validates an arbitrary request value, optionally scoped to the
// named fields. Unsupported values yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
