package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/config"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/mock"
	"github.com/MKhiriev/go-volunteer-hub/internal/service"
	"github.com/MKhiriev/go-volunteer-hub/internal/utils"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// serviceMocks groups the gomock services behind a test Handler.
type serviceMocks struct {
	tokens  *mock.MockTokenService
	auth    *mock.MockAuthService
	events  *mock.MockEventService
	appInfo *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{Environment: config.EnvTest},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

func newMockedHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		tokens:  mock.NewMockTokenService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		events:  mock.NewMockEventService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		TokenService:   m.tokens,
		AuthService:    m.auth,
		EventService:   m.events,
		AppInfoService: m.appInfo,
	}, testConfig(), logger.Nop())

	return h, m
}

// expectSession makes the route guard accept the cookie "valid-token" as
// a session of userID.
func (m serviceMocks) expectSession(userID string) {
	token := models.Token{SignedString: "valid-token", UserID: userID, ID: "jti-" + userID}
	m.tokens.EXPECT().Verify(gomock.Any(), "valid-token").Return(token, nil)
	m.tokens.EXPECT().IsRevoked(gomock.Any(), token).Return(false, nil)
}

// withSession returns r carrying a verified session of userID in its
// context, as the route guard leaves it.
func withSession(r *http.Request, userID string) *http.Request {
	token := models.Token{SignedString: "valid-token", UserID: userID}
	return r.WithContext(utils.WithSession(r.Context(), token))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func sessionCookieOf(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
