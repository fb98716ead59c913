package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
	"playlistbot/spotify/track"
)

// -- Tracks ---

type searchResponse struct {
	Tracks struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	} `json:"tracks"`
}

type addTracksRequest struct {
	URIs []string `json:"uris"`
}

// SearchTrack finds the best match for a free-text query and returns its
// track ID. An empty result set returns an empty ID, not an error.
func (c *Client) SearchTrack(ctx context.Context, query string) (string, error) {
	values := url.Values{
		"q":     {query},
		"type":  {"track"},
		"limit": {"1"},
	}

	resp, err := c.send(ctx, http.MethodGet, "/search", values, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		drain(resp)
		return "", fmt.Errorf("spotify: search track: status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	if len(result.Tracks.Items) == 0 {
		logger.Debug("No track found", zap.String(zapkey.Query, query))
		return "", nil
	}
	return result.Tracks.Items[0].ID, nil
}

// AddTracks adds tracks to a playlist as one batched request.
// TODO: Paginate if necessary - Spotify API has a limit of 100 tracks per request
func (c *Client) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if playlistID == "" {
		return fmt.Errorf("spotify: no playlist ID provided")
	}
	if len(trackIDs) == 0 {
		return fmt.Errorf("spotify: no tracks to add")
	}

	uris := track.ToURIs(trackIDs)
	resp, err := c.send(ctx, http.MethodPost, "/playlists/"+playlistID+"/tracks", nil, addTracksRequest{URIs: uris})
	if err != nil {
		return err
	}
	drain(resp)

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("spotify: add tracks: status %d", resp.StatusCode)
	}
	logger.Info("Added tracks to playlist",
		zap.String(zapkey.PlaylistID, playlistID),
		zap.Strings(zapkey.TrackURIs, uris))
	return nil
}
