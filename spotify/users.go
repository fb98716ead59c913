package spotify

import (
	"context"
	"fmt"
	"net/http"
)

// -- Users ---

// User is the profile of the authenticated user
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// CurrentUser gets profile information about the current user. Used at
// startup to verify the stored credential still works.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	resp, err := c.send(ctx, http.MethodGet, "/me", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drain(resp)
		return nil, fmt.Errorf("spotify: current user: status %d", resp.StatusCode)
	}

	var user User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
