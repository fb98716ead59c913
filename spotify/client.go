// Package spotify provides a client for interacting with the Spotify Web API
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"playlistbot/log"
)

const defaultBaseURL = "https://api.spotify.com/v1"

var logger = log.Logger.Named("spotify")

// Credentials provides the bearer token for API calls. Refresh is handed
// the token a 401 rejected so racing refreshes can be coalesced.
type Credentials interface {
	AccessToken() string
	Refresh(ctx context.Context, stale string) (string, error)
}

// Client calls the Spotify Web API
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
}

// NewClient creates a new Spotify client
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, fmt.Errorf("spotify: no credentials provided")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option is a function that overrides a default client value
type Option func(*Client)

// WithBaseURL overrides the default API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}
