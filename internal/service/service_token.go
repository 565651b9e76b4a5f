// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/store"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/golang-jwt/jwt/v5"
)

// IDGenerator produces identifiers for new users, events and tokens.
type IDGenerator interface {
	Generate() string
}

// tokenService signs session tokens with HMAC-SHA256 and keeps revoked
// token ids in a [store.TokenDenylist].
type tokenService struct {
	denylist store.TokenDenylist
	ids      IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in and required from every
	// token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the App configuration.
func NewTokenService(denylist store.TokenDenylist, ids IDGenerator, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		denylist:      denylist,
		ids:           ids,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Issue signs a token for userID with a fresh "jti".
func (s *tokenService) Issue(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.ids.Generate(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tokenService.Issue").Str("user_id", userID).Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString and returns its claims.
//
// Errors:
//   - ErrTokenMissing if tokenString is empty.
//   - ErrTokenExpired if the "exp" claim is in the past.
//   - ErrTokenInvalid for any other signature, issuer or claim problem.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenMissing
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrTokenExpired
	case err != nil:
		logger.FromContext(ctx).Debug().Err(err).Str("func", "tokenService.Verify").Msg("token rejected")
		return models.Token{}, ErrTokenInvalid
	case token.UserID == "":
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// Revoke stores the token id until the token would have expired anyway.
func (s *tokenService) Revoke(ctx context.Context, token models.Token) error {
	return s.denylist.Revoke(ctx, token.ID, token.TTL(s.now()))
}

func (s *tokenService) IsRevoked(ctx context.Context, token models.Token) (bool, error) {
	return s.denylist.IsRevoked(ctx, token.ID)
}
