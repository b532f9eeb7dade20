package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultHTTPClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000")
//	resp, err := client.R().Get("/employees")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for the employees API rooted at baseURL.
// Requests accept JSON and time out after ten seconds.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultHTTPClientTimeout)

	return &HTTPClient{Client: client}
}

// WithBearerToken returns the client with the Authorization header set for
// every following request.
func (c *HTTPClient) WithBearerToken(token string) *HTTPClient {
	c.SetAuthToken(token)
	return c
}
