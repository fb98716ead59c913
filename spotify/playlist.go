package spotify

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
)

// Playlist is a named playlist owned by the current user
type Playlist struct {
	Name string
	ID   string
}

type playlistItem struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type playlistPage struct {
	Items []playlistItem `json:"items"`
}

type createPlaylistRequest struct {
	Name   string `json:"name"`
	Public bool   `json:"public"`
}

// ListPlaylists gets the current user's playlists in the order the API
// returns them. The list is fetched fresh on every call, never cached.
func (c *Client) ListPlaylists(ctx context.Context) ([]Playlist, error) {
	resp, err := c.send(ctx, http.MethodGet, "/me/playlists", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drain(resp)
		return nil, fmt.Errorf("spotify: list playlists: status %d", resp.StatusCode)
	}

	var page playlistPage
	if err := decode(resp, &page); err != nil {
		return nil, err
	}

	playlists := make([]Playlist, 0, len(page.Items))
	for _, item := range page.Items {
		playlists = append(playlists, Playlist{Name: item.Name, ID: item.ID})
	}
	logger.Debug("Fetched playlists", zap.Int(zapkey.Count, len(playlists)))
	return playlists, nil
}

// CreatePlaylist creates a new private playlist with the given name
func (c *Client) CreatePlaylist(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("spotify: no playlist name provided")
	}

	resp, err := c.send(ctx, http.MethodPost, "/me/playlists", nil, createPlaylistRequest{Name: name, Public: false})
	if err != nil {
		return err
	}
	drain(resp)

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("spotify: create playlist: status %d", resp.StatusCode)
	}
	logger.Info("Created playlist", zap.String(zapkey.Name, name))
	return nil
}
