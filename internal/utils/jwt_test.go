package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "0190f6c8-0000-7000-8000-000000000001"
	tokenID := "jti-1"
	duration := time.Hour
	key := "secret-key"

	before := time.Now().Truncate(time.Second)
	token, err := GenerateJWTToken(issuer, userID, tokenID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != userID || token.ID != tokenID {
		t.Errorf("unexpected token identity: %+v", token)
	}
	if token.IssuedAt.Before(before) {
		t.Errorf("issued at %v is before %v", token.IssuedAt, before)
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt); got != duration {
		t.Errorf("expected lifetime %v, got %v", duration, got)
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token.SignedString, claims); err != nil {
		t.Fatalf("could not parse generated token: %v", err)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.ID != tokenID {
		t.Errorf("expected jti %s, got %s", tokenID, claims.ID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		tokenID  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", "j", time.Hour, "key"},
		{"empty user", "iss", "", "j", time.Hour, "key"},
		{"empty token id", "iss", "u", "", time.Hour, "key"},
		{"zero duration", "iss", "u", "j", 0, "key"},
		{"negative duration", "iss", "u", "j", -time.Second, "key"},
		{"empty key", "iss", "u", "j", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.tokenID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, "user-456", "jti-456", 5*time.Minute, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken != genToken {
		t.Errorf("expected parsed token %+v, got %+v", genToken, parsedToken)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u", "j", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	key := "key"
	past := time.Now().Add(-time.Hour)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "u",
		ID:        "j",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(raw, key, "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	key := "key"
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "test-issuer",
		Subject: "u",
	}).SignedString([]byte(key))

	if _, err := ValidateAndParseJWTToken(raw, key, "test-issuer"); err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	key := "key"
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(key))

	if _, err := ValidateAndParseJWTToken(raw, key, "test-issuer"); err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	key := "key"
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "u",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(key))

	if _, err := ValidateAndParseJWTToken(raw, key, "test-issuer"); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u", "j", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwdw==", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
