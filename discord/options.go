package discord

import (
	"github.com/bwmarrin/discordgo"

	"playlistbot/discord/config"
)

// Option is a function that overrides a default client value
type Option func(*Client)

// WithConfig sets the client configuration
func WithConfig(config *config.Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithHandlers registers event handlers on the client
func WithHandlers(handlers ...Handler) Option {
	return func(c *Client) {
		for _, handler := range handlers {
			if handler == nil {
				logger.Warn("nil handler provided")
				continue
			}
			c.handlers = append(c.handlers, handler)
		}
	}
}

// WithSession sets an existing discord session on the client
func WithSession(session *discordgo.Session) Option {
	return func(c *Client) {
		c.session = session
	}
}
