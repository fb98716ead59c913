// Package main mints the bot's first Spotify token. Run it once,
// interactively: it prints an authorization URL, waits for the OAuth
// callback and writes the token file the bot loads at startup.
package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"playlistbot/constants/zapkey"
	"playlistbot/log"
	"playlistbot/spotify/auth"
	"playlistbot/spotify/config"
)

// TODO: Make this randomized
const state = "playlistbot-state"

const authTimeout = 5 * time.Minute

func main() {
	defer log.Logger.Sync()

	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Logger.Fatal("authorization failed", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	authenticator := spotifyauth.New(
		spotifyauth.WithClientID(cfg.ClientID),
		spotifyauth.WithClientSecret(cfg.ClientSecret),
		spotifyauth.WithRedirectURL(cfg.RedirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopePlaylistModifyPublic,
			spotifyauth.ScopePlaylistModifyPrivate,
		),
	)

	// The callback server listens where the redirect URI points
	redirect, err := url.Parse(cfg.RedirectURI)
	if err != nil {
		return fmt.Errorf("invalid redirect URI: %w", err)
	}

	tokenChan := make(chan *oauth2.Token, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, callbackHandler(authenticator, tokenChan))
	server := &http.Server{Addr: ":" + redirect.Port(), Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Logger.Fatal("callback server failed", zap.Error(err))
		}
	}()
	defer server.Close()

	fmt.Println("Open this URL in your browser to authenticate:")
	fmt.Println(authenticator.AuthURL(state))

	var token *oauth2.Token
	select {
	case token = <-tokenChan:
	case <-time.After(authTimeout):
		return fmt.Errorf("authentication timeout")
	}

	path := cfg.TokenFile
	if path == "" {
		if path, err = auth.DefaultTokenPath(); err != nil {
			return err
		}
	}
	if err := auth.Save(path, token); err != nil {
		return err
	}

	log.Logger.Info("Token saved", zap.String(zapkey.Path, path))
	fmt.Println("✅ Token saved to", path)
	return nil
}

// callbackHandler returns the HTTP handler for the Spotify OAuth callback
func callbackHandler(authenticator *spotifyauth.Authenticator, tokenChan chan<- *oauth2.Token) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("state") != state {
			http.Error(w, "State mismatch", http.StatusForbidden)
			return
		}

		token, err := authenticator.Token(context.Background(), state, r)
		if err != nil {
			http.Error(w, "Couldn't get token", http.StatusForbidden)
			return
		}

		select {
		case tokenChan <- token:
		default:
			// Channel is full or closed, ignore
		}

		if _, err := fmt.Fprintln(w, "Spotify authentication successful! You can close this window."); err != nil {
			log.Logger.Error("Failed to write response", zap.Error(err))
		}
	}
}
