// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. The Route Guard writes it after a token is verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190f6c8-...")
var UserIDCtxKey = contextKey("userID")

// TokenCtxKey is the key used to store the verified [models.Token] of the
// current request. The route guard sets it together with UserIDCtxKey;
// read it with GetTokenFromContext when the token id or expiry is needed.
var TokenCtxKey = contextKey("token")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenFromContext retrieves the verified session token from the context.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// WithSession returns a copy of ctx carrying the token and its owner id.
func WithSession(ctx context.Context, token models.Token) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, token.UserID)
	return context.WithValue(ctx, TokenCtxKey, token)
}
