// Package track converts between track IDs, share URLs and API URIs
package track

import (
	"regexp"
)

const uriPrefix = "spotify:track:"

// Regex to match Spotify track URLs and capture everything after '/track/' until the query indicator '?' or end
var trackURLRegex = regexp.MustCompile(`open\.spotify\.com/track/([^?\s]+)`)

// ExtractTrackID extracts the track ID from a Spotify track URL.
// Returns an empty string when the text is not a track URL.
func ExtractTrackID(url string) string {
	matches := trackURLRegex.FindStringSubmatch(url)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// ToURIs converts track IDs to the URI form the add-tracks endpoint expects
func ToURIs(trackIDs []string) []string {
	uris := make([]string, 0, len(trackIDs))
	for _, trackID := range trackIDs {
		uris = append(uris, uriPrefix+trackID)
	}
	return uris
}
