// Package debug provides utilities for debugging this service
package debug

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/log"
	"playlistbot/utils/httputil"
)

var logger = log.Logger.Named("debug")

// Client for debugging this service
type Client struct {
	server *http.Server
}

// NewClient creates a new debug client
func NewClient() (*Client, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", homeHandler)
	mux.HandleFunc("/health", healthHandler)

	return &Client{
		server: &http.Server{
			Addr:    httputil.Port(),
			Handler: mux,
		},
	}, nil
}

func (c *Client) String() string {
	return "Debug Client"
}

// Start the debug client in the background
func (c *Client) Start() error {
	logger.Info("Debug server starting", zap.String(zapkey.Port, c.server.Addr))
	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Debug server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop the debug client
func (c *Client) Stop() error {
	return c.server.Close()
}

// homeHandler handles the default route
func homeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		// Not our job to handle this
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "playlistbot"); err != nil {
		logger.Error("Failed to write response", zap.Error(err), zap.String(zapkey.Path, r.URL.Path))
	}
}

// healthHandler handles the health check route
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprintf(w, "OK"); err != nil {
		logger.Error("Failed to write response", zap.Error(err), zap.String(zapkey.Path, r.URL.Path))
	}
}
