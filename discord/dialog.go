package discord

import (
	"context"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/session"
	"playlistbot/utils/ctxutil"
)

// handleText advances the user's add-tracks dialog with a free-text reply.
// The state machine decides what the text means; this method performs the
// API calls the decision asks for and stores the resulting state.
func (h *MessageHandler) handleText(ctx context.Context, userID, text string) string {
	state := h.sessions.Get(userID)
	next, action, choice := state.Interpret(text)

	ctx, fields := ctxutil.WithZapFields(ctx, zap.Stringer(zapkey.Stage, state.Stage))

	switch action {
	case session.ActionNone:
		// Nothing pending for this user, the text is not for us
		return ""

	case session.ActionConfirmed:
		// The offered list is fetched fresh here; an earlier listing may be stale
		playlists, err := h.fetchPlaylists(ctx)
		if err != nil {
			logger.With(zap.Error(err)).Error("Failed to fetch playlists", fields...)
			return "❌ Error fetching playlists."
		}
		if len(playlists) == 0 {
			return "📂 No playlists found. Create one with /create <name>."
		}
		h.sessions.Put(userID, next.OfferPlaylists(playlists))
		return formatPlaylists("📂 Choose a playlist by index:", playlists)

	case session.ActionCancelled:
		h.sessions.Clear(userID)
		logger.Info("Song addition cancelled", fields...)
		return "❌ Song addition cancelled."

	case session.ActionUnrecognized:
		return "❓ Please reply with 'yes' or 'no'."

	case session.ActionNotANumber:
		return "❌ Please enter a valid number."

	case session.ActionInvalidSelection:
		return "❌ Invalid playlist selection."

	case session.ActionSelected:
		// Pending state clears before the add, whatever its outcome
		trackIDs := state.TrackIDs
		h.sessions.Clear(userID)

		if err := h.service.AddTracks(ctx, choice.ID, trackIDs); err != nil {
			logger.With(
				zap.Error(err),
				zap.String(zapkey.PlaylistID, choice.ID),
				zap.Strings(zapkey.TrackIDs, trackIDs),
			).Error("Failed to add tracks", fields...)
			return "❌ Error adding songs."
		}
		logger.With(
			zap.String(zapkey.PlaylistID, choice.ID),
			zap.Int(zapkey.Count, len(trackIDs)),
		).Info("Added songs", fields...)
		return "✅ Songs added successfully!"
	}

	return ""
}
