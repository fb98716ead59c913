package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"playlistbot/constants/zapkey"
)

// send performs one authorized API request. A 401 triggers exactly one
// credential refresh followed by one resend; a second 401 is returned to
// the caller like any other status. Transport errors are never retried.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload any) (*http.Response, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("spotify: marshal request: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	token := c.creds.AccessToken()
	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, fmt.Errorf("spotify: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("spotify: %w", err)
		}
		if resp.StatusCode != http.StatusUnauthorized || attempt > 0 {
			return resp, nil
		}

		// Token rejected: refresh once and resend with the replacement
		if err := resp.Body.Close(); err != nil {
			logger.Warn("Failed to close response body", zap.Error(err))
		}
		token, err = c.creds.Refresh(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("spotify: %w", err)
		}
		logger.Info("Retrying after credential refresh",
			zap.String(zapkey.Method, method),
			zap.String(zapkey.Path, path))
	}
}

// decode reads a JSON response body into out and closes it
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify: decode response: %w", err)
	}
	return nil
}

// drain discards and closes a response body we have no use for
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
