// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-42")

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "user-42" {
		t.Errorf("expected userID=user-42, got %s", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing value")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %s", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for int64 value")
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty id")
	}
}

func TestWithSession(t *testing.T) {
	token := models.Token{
		SignedString: "a.b.c",
		UserID:       "user-1",
		ID:           "jti-1",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	ctx := WithSession(context.Background(), token)

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "user-1" {
		t.Errorf("expected user-1, got %q (ok=%v)", userID, ok)
	}

	got, ok := GetTokenFromContext(ctx)
	if !ok {
		t.Fatal("expected token in context")
	}
	if got != token {
		t.Errorf("expected %+v, got %+v", token, got)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	if _, ok := GetTokenFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing token")
	}
}
