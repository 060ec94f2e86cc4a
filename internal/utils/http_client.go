package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for the notes daemon at baseURL. A zero
// timeout leaves resty's default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// WithToken returns a request that carries token as a bearer credential.
func (c *HTTPClient) WithToken(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}
