// Package envvar defines environment variable keys as constants
package envvar

// General constants
const (
	VerboseLogsEnabled = "VERBOSE_LOGS_ENABLED"
)

// HTTP-related constants
const (
	Port = "PORT"
)

// Discord-related constants
const (
	// Authentication
	DiscordToken = "DISCORD_TOKEN"

	// Optional channel restriction: when set, the bot only answers in this channel
	DiscordSongsChannelID = "DISCORD_SONGS_CHANNEL_ID"
)

// Spotify-related constants
const (
	SpotifyAppID       = "SPOTIFY_APP_ID"
	SpotifySecret      = "SPOTIFY_SECRET"
	SpotifyRedirectURI = "SPOTIFY_REDIRECT_URI"
	SpotifyTokenFile   = "SPOTIFY_TOKEN_FILE"
)
