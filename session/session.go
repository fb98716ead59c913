// Package session tracks each user's progress through the add-tracks
// dialog: search results waiting for a yes/no, then a playlist pick.
package session

import (
	"strconv"
	"strings"
)

// Stage is a user's position in the dialog
type Stage int

const (
	// StageIdle means no pending dialog
	StageIdle Stage = iota
	// StageAwaitingConfirmation means search results are waiting for a yes/no
	StageAwaitingConfirmation
	// StageAwaitingPlaylistChoice means a numbered playlist list is waiting for a pick
	StageAwaitingPlaylistChoice
)

// String returns the stage name for logging
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAwaitingConfirmation:
		return "awaiting_confirmation"
	case StageAwaitingPlaylistChoice:
		return "awaiting_playlist_choice"
	}
	return "unknown"
}

// Playlist is one entry of the numbered list offered to the user
type Playlist struct {
	Name string
	ID   string
}

// State is one user's dialog state. TrackIDs is set from a successful
// search until the dialog resolves; Playlists exists only while a pick is
// awaited and always clears together with TrackIDs.
type State struct {
	Stage     Stage
	TrackIDs  []string
	Playlists map[int]Playlist
}

// Action is what a free-text reply asks the bot to do
type Action int

const (
	// ActionNone: nothing pending, the text is not for us
	ActionNone Action = iota
	// ActionConfirmed: the user accepted the found tracks
	ActionConfirmed
	// ActionCancelled: the user rejected the found tracks
	ActionCancelled
	// ActionUnrecognized: a confirmation was expected but the text is not yes/no
	ActionUnrecognized
	// ActionSelected: the user picked a playlist from the offered list
	ActionSelected
	// ActionNotANumber: a pick was expected but the text is not an integer
	ActionNotANumber
	// ActionInvalidSelection: the number is not in the offered list
	ActionInvalidSelection
)

// AwaitConfirmation starts a dialog for the given search results
func AwaitConfirmation(trackIDs []string) State {
	return State{
		Stage:    StageAwaitingConfirmation,
		TrackIDs: trackIDs,
	}
}

// OfferPlaylists moves a confirmed dialog to the playlist pick, indexing
// the offered playlists 1-based in the order they were listed
func (s State) OfferPlaylists(playlists []Playlist) State {
	choices := make(map[int]Playlist, len(playlists))
	for i, p := range playlists {
		choices[i+1] = p
	}
	return State{
		Stage:     StageAwaitingPlaylistChoice,
		TrackIDs:  s.TrackIDs,
		Playlists: choices,
	}
}

// Interpret maps a free-text reply to the next state and the action the
// caller should perform. It is pure: all I/O the action needs happens in
// the caller. Matching is on the lowercased, trimmed message.
func (s State) Interpret(text string) (State, Action, Playlist) {
	reply := strings.ToLower(strings.TrimSpace(text))

	switch s.Stage {
	case StageAwaitingConfirmation:
		switch reply {
		case "yes":
			return s, ActionConfirmed, Playlist{}
		case "no":
			return State{}, ActionCancelled, Playlist{}
		default:
			return s, ActionUnrecognized, Playlist{}
		}

	case StageAwaitingPlaylistChoice:
		index, err := strconv.Atoi(reply)
		if err != nil {
			return s, ActionNotANumber, Playlist{}
		}
		choice, ok := s.Playlists[index]
		if !ok {
			return s, ActionInvalidSelection, Playlist{}
		}
		return State{}, ActionSelected, choice
	}

	return s, ActionNone, Playlist{}
}
