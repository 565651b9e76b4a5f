package utils

import (
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000")
//	resp, err := client.R().Get("/api/events")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance pointed at
// baseURL. The client keeps cookies between requests so the "jwt" session
// cookie set by login is sent back automatically.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, cookie jar and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	// cookiejar.New only fails on a non-nil PublicSuffixList error.
	if jar, err := cookiejar.New(nil); err == nil {
		client.SetCookieJar(jar)
	}

	return &HTTPClient{Client: client}
}
