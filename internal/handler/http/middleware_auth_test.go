package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-volunteer-hub/internal/service"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureSession returns a handler recording the session the guard left in
// the request context.
func captureSession(called *bool, userID *string, token *models.Token) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*userID, _ = utils.GetUserIDFromContext(r.Context())
		*token, _ = utils.GetTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthorize_CookieSession(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectSession("user-1")

	var (
		called bool
		userID string
		token  models.Token
	)
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	rec := httptest.NewRecorder()

	h.authorize(captureSession(&called, &userID, &token)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "jti-user-1", token.ID)
}

func TestAuthorize_BearerSession(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectSession("user-2")

	var (
		called bool
		userID string
		token  models.Token
	)
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	h.authorize(captureSession(&called, &userID, &token)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-2", userID)
}

func TestAuthorize_CookieWinsOverHeader(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectSession("user-3")

	var (
		called bool
		userID string
		token  models.Token
	)
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	req.Header.Set("Authorization", "Bearer other-token")
	rec := httptest.NewRecorder()

	h.authorize(captureSession(&called, &userID, &token)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-3", userID)
}

func TestAuthorize_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		verifyErr   error
		revoked     bool
		revokedErr  error
		wantMessage string
	}{
		{
			name:        "no token",
			verifyErr:   service.ErrTokenMissing,
			wantMessage: service.ErrTokenMissing.Error(),
		},
		{
			name:        "expired token",
			cookie:      "expired",
			verifyErr:   service.ErrTokenExpired,
			wantMessage: service.ErrTokenExpired.Error(),
		},
		{
			name:        "forged token",
			cookie:      "forged",
			verifyErr:   service.ErrTokenInvalid,
			wantMessage: service.ErrTokenInvalid.Error(),
		},
		{
			name:        "revoked token",
			cookie:      "revoked",
			revoked:     true,
			wantMessage: service.ErrTokenRevoked.Error(),
		},
		{
			name:        "denylist unavailable",
			cookie:      "valid",
			revokedErr:  errors.New("dial tcp: connection refused"),
			wantMessage: service.ErrTokenInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)

			token := models.Token{SignedString: tt.cookie, UserID: "u1", ID: "jti"}
			m.tokens.EXPECT().Verify(gomock.Any(), tt.cookie).Return(token, tt.verifyErr)
			if tt.verifyErr == nil {
				m.tokens.EXPECT().IsRevoked(gomock.Any(), token).Return(tt.revoked, tt.revokedErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })
			h.authorize(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled)

			body := decodeResponse[models.ErrorResponse](t, rec)
			assert.Equal(t, codeUnauthorized, body.Code)
			assert.Equal(t, tt.wantMessage, body.Error)
		})
	}
}

func TestAuthorize_RemembersUserForAccessLog(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectSession("user-9")

	lw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	req = req.WithContext(contextWithAccessLog(req, lw))

	h.authorize(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(lw, req)

	assert.Equal(t, "user-9", lw.userID)
}
