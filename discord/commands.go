package discord

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/session"
	"playlistbot/spotify/track"
	"playlistbot/utils/ctxutil"
)

const (
	startCommand     = "/start"
	playlistsCommand = "/playlists"
	createCommand    = "/create"
	addCommand       = "/add"
)

const startReply = "🎵 Welcome to Spotify Bot! 🎵\n\n" +
	"Use the commands below:\n" +
	"➡️ /add <song> - Add a song to a playlist\n" +
	"➡️ /playlists - View your playlists\n" +
	"➡️ /create <name> - Create a new playlist\n\n" +
	"Enjoy your music! 🎶"

// dispatch routes one message to a command handler or, when it is not a
// command, to the free-text dialog. Returns the reply to send, empty when
// the message is not for us.
func (h *MessageHandler) dispatch(ctx context.Context, userID, content string) string {
	name, args := parseCommand(content)

	switch name {
	case startCommand:
		return startReply
	case playlistsCommand:
		return h.listPlaylists(ctx)
	case createCommand:
		return h.createPlaylist(ctx, args)
	case addCommand:
		return h.addSongs(ctx, userID, args)
	case "":
		return h.handleText(ctx, userID, content)
	default:
		// A command we don't know, leave it to other bots
		logger.Debug("Ignoring unknown command", zap.String(zapkey.Command, name))
		return ""
	}
}

// parseCommand splits "/name rest of args" into name and args. Non-command
// text returns an empty name.
func parseCommand(content string) (string, string) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "/") {
		return "", trimmed
	}
	name, args, _ := strings.Cut(trimmed, " ")
	return name, strings.TrimSpace(args)
}

// listPlaylists handles /playlists. State-independent: never touches the session.
func (h *MessageHandler) listPlaylists(ctx context.Context) string {
	fields := ctxutil.ZapFields(ctx)

	playlists, err := h.fetchPlaylists(ctx)
	if err != nil {
		logger.With(zap.Error(err)).Error("Failed to fetch playlists", fields...)
		return "❌ Error fetching playlists."
	}
	if len(playlists) == 0 {
		return "📂 No playlists found. Create one with /create <name>."
	}
	return formatPlaylists("📂 Your Playlists:", playlists)
}

// fetchPlaylists lists the user's playlists in display order
func (h *MessageHandler) fetchPlaylists(ctx context.Context) ([]session.Playlist, error) {
	listed, err := h.service.ListPlaylists(ctx)
	if err != nil {
		return nil, err
	}
	playlists := make([]session.Playlist, 0, len(listed))
	for _, p := range listed {
		playlists = append(playlists, session.Playlist{Name: p.Name, ID: p.ID})
	}
	return playlists, nil
}

// createPlaylist handles /create <name>
func (h *MessageHandler) createPlaylist(ctx context.Context, name string) string {
	fields := ctxutil.ZapFields(ctx)

	if name == "" {
		return "❌ Usage: /create <playlist name>"
	}
	if err := h.service.CreatePlaylist(ctx, name); err != nil {
		logger.With(zap.Error(err), zap.String(zapkey.Name, name)).Error("Failed to create playlist", fields...)
		return "❌ Error creating playlist."
	}
	return fmt.Sprintf("✅ Playlist '%s' created successfully!", name)
}

// addSongs handles /add <query[;query...]>. Each query is searched in
// order; queries with no match are dropped. A query that is a pasted track
// URL resolves to its embedded ID without a search.
func (h *MessageHandler) addSongs(ctx context.Context, userID, args string) string {
	fields := ctxutil.ZapFields(ctx)

	if args == "" {
		return "❌ Usage: /add <song name>"
	}

	var found []string
	var trackIDs []string
	for _, query := range strings.Split(args, ";") {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}

		trackID := track.ExtractTrackID(query)
		if trackID == "" {
			var err error
			trackID, err = h.service.SearchTrack(ctx, query)
			if err != nil {
				// The query is dropped, same as a no-result search
				logger.With(zap.Error(err), zap.String(zapkey.Query, query)).Error("Track search failed", fields...)
				continue
			}
		}
		if trackID == "" {
			continue
		}
		found = append(found, query)
		trackIDs = append(trackIDs, trackID)
	}

	if len(trackIDs) == 0 {
		return "❌ No songs found."
	}

	h.sessions.Put(userID, session.AwaitConfirmation(trackIDs))
	logger.With(
		zap.Strings(zapkey.TrackIDs, trackIDs),
		zap.Stringer(zapkey.Stage, session.StageAwaitingConfirmation),
	).Info("Awaiting confirmation", fields...)

	var b strings.Builder
	b.WriteString("🎵 Songs found:\n")
	for _, query := range found {
		fmt.Fprintf(&b, "- %s\n", query)
	}
	b.WriteString("\n✅ Reply with 'yes' to add them or 'no' to cancel.")
	return b.String()
}

// formatPlaylists renders a numbered playlist list under a header. The
// numbering matches the 1-based indices stored for selection.
func formatPlaylists(header string, playlists []session.Playlist) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for i, p := range playlists {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}
