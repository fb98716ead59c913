// Package auth holds the Spotify credential for the bot: an OAuth token
// persisted to a file, loaded at startup and replaced in place on refresh.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	spotifyoauth "golang.org/x/oauth2/spotify"

	"playlistbot/constants/zapkey"
	"playlistbot/log"
	"playlistbot/spotify/config"
)

const tokenFile = "spotify_token.json"

var logger = log.Logger.Named("auth")

// Credentials owns the process-wide Spotify token. All access goes through
// the mutex so a refresh triggered by one request cannot race another
// request reading the token mid-replacement.
type Credentials struct {
	mu    sync.Mutex
	token *oauth2.Token
	conf  *oauth2.Config
	path  string
}

// Option is a function that overrides a default credentials value
type Option func(*Credentials)

// WithTokenURL overrides the default Spotify token endpoint
func WithTokenURL(url string) Option {
	return func(c *Credentials) {
		c.conf.Endpoint.TokenURL = url
	}
}

// WithPath overrides the default token file location
func WithPath(path string) Option {
	return func(c *Credentials) {
		c.path = path
	}
}

// New loads the persisted token and returns a credential provider for it.
// A missing token file is an error: the bot cannot mint its first token
// itself, that is the authorize command's job.
func New(cfg *config.Config, opts ...Option) (*Credentials, error) {
	c := &Credentials{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     spotifyoauth.Endpoint,
		},
		path: cfg.TokenFile,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.path == "" {
		path, err := DefaultTokenPath()
		if err != nil {
			return nil, err
		}
		c.path = path
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultTokenPath returns the default token file location
func DefaultTokenPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".playlistbot", tokenFile), nil
}

// load reads the token file into memory
func (c *Credentials) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no token file at %s, run the authorize command first", c.path)
		}
		return fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("failed to unmarshal token: %w", err)
	}

	c.token = &token
	logger.Info("Token loaded from file", zap.String(zapkey.Path, c.path))
	return nil
}

// AccessToken returns the current bearer token
func (c *Credentials) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token.AccessToken
}

// Refresh exchanges the refresh token for a new access token and persists
// the replacement. stale is the access token the caller saw rejected: if
// the stored token has already moved past it, another request's refresh
// won the race and its result is returned without a second exchange.
func (c *Credentials) Refresh(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.AccessToken != stale {
		logger.Info("Token already refreshed by a concurrent request")
		return c.token.AccessToken, nil
	}

	fresh, err := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.token.RefreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}
	// Spotify omits the refresh token from refresh responses; keep the old one
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = c.token.RefreshToken
	}
	c.token = fresh

	if err := c.save(); err != nil {
		// The in-memory token is still good, keep serving with it
		logger.Error("Failed to save refreshed token", zap.Error(err))
	}

	logger.Info("Token refreshed", zap.String(zapkey.Path, c.path))
	return c.token.AccessToken, nil
}

// save writes the current token to the token file, replacing it wholesale
func (c *Credentials) save() error {
	return Save(c.path, c.token)
}

// Save writes an OAuth token to the given file
func Save(path string, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("no token to save")
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}
