package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/log"
	"playlistbot/session"
	"playlistbot/spotify"
	"playlistbot/utils/ctxutil"
)

// PlaylistService is the slice of the Spotify client the bot commands use
type PlaylistService interface {
	ListPlaylists(ctx context.Context) ([]spotify.Playlist, error)
	CreatePlaylist(ctx context.Context, name string) error
	SearchTrack(ctx context.Context, query string) (string, error)
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error
}

// MessageHandler routes chat messages to bot commands and the add-tracks dialog
type MessageHandler struct {
	service  PlaylistService
	sessions *session.Store

	// channelID restricts the handler to one channel when set
	channelID string
}

// NewMessageHandler creates a message handler backed by the given service
func NewMessageHandler(service PlaylistService, sessions *session.Store, opts ...MessageHandlerOption) (*MessageHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("playlist service is nil")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is nil")
	}

	h := &MessageHandler{
		service:  service,
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// MessageHandlerOption is a function that overrides a default handler value
type MessageHandlerOption func(*MessageHandler)

// WithChannelID restricts the handler to the given channel
func WithChannelID(channelID string) MessageHandlerOption {
	return func(h *MessageHandler) {
		h.channelID = channelID
	}
}

func (h *MessageHandler) String() string {
	return "MessageHandler"
}

// Add registers the handler on a discord session
func (h *MessageHandler) Add(s *discordgo.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}
	s.AddHandler(h.Handle)
	return nil
}

// Handle processes one inbound message
func (h *MessageHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s == nil {
		logger.Error("session is nil")
		return
	}

	// Validate message
	if err := validateMessage(m); err != nil {
		logger.Error("invalid message", zap.Error(err))
		return
	}

	// Zap logging Fields
	ctx, fields := ctxutil.WithZapFields(
		context.Background(),
		zap.String(zapkey.ChannelID, m.ChannelID),
		zap.String(zapkey.ID, m.ID),
		zap.String(zapkey.Type, "message"),
	)
	if m.Author.Bot {
		return
	}
	if h.channelID != "" && m.ChannelID != h.channelID {
		return
	}

	ctx, fields = ctxutil.WithZapFields(
		ctx,
		zap.String(zapkey.UserName, m.Author.Username),
		zap.String(zapkey.UserID, m.Author.ID),
	)

	// Log full message data if verbose logs are enabled
	if log.VerboseLogsEnabled(ctx) {
		logger.With(zap.Any(zapkey.Message, m)).Info("Full message data", fields...)
	}

	reply := h.dispatch(ctx, m.Author.ID, m.Content)
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		logger.With(zap.Error(err)).Error("Failed to send reply", fields...)
		return
	}
	logger.With(zap.String(zapkey.Reply, reply)).Info("Sent reply", fields...)
}

func validateMessage(m *discordgo.MessageCreate) error {
	if m == nil {
		return fmt.Errorf("message create is nil")
	}
	if m.Message == nil {
		return fmt.Errorf("message is nil")
	}
	if m.Content == "" {
		return fmt.Errorf("message content is empty")
	}
	if m.Author == nil {
		return fmt.Errorf("message author is nil")
	}
	return nil
}
