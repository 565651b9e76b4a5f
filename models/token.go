package models

import "time"

// Token is a signed session token together with the claims the server
// cares about.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be set as the "jwt" cookie or
// returned to non-browser clients.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`

	// ID is the unique token identifier ("jti" claim). It is the key used
	// when the token is revoked on logout.
	ID string `json:"-"`

	// IssuedAt and ExpiresAt mirror the "iat" and "exp" claims.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TTL returns how long the token stays valid counting from now.
// Expired tokens report zero.
func (t Token) TTL(now time.Time) time.Duration {
	if ttl := t.ExpiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
