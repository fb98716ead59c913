// Package config provides utilities for managing Discord configuration
package config

import (
	"fmt"
	"os"

	"playlistbot/constants/envvar"
)

// Config represents the configuration for the Discord client
type Config struct {
	Token string

	// SongsChannelID restricts the bot to one channel when set. Optional.
	SongsChannelID string
}

// NewConfig creates a new configuration struct for the Discord client
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Token:          os.Getenv(envvar.DiscordToken),
		SongsChannelID: os.Getenv(envvar.DiscordSongsChannelID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("discord token is not set")
	}
	return nil
}

// Option is a function that overrides a default configuration value
type Option func(*Config)

// WithToken sets the discord token
func WithToken(token string) Option {
	return func(c *Config) {
		c.Token = token
	}
}

// WithSongsChannelID restricts the bot to the given channel
func WithSongsChannelID(channelID string) Option {
	return func(c *Config) {
		c.SongsChannelID = channelID
	}
}
