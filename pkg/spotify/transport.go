package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// apiError is the error envelope Spotify returns with non-2xx responses.
type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// get issues a GET request against the API and decodes the JSON body into out.
//
// It handles:
// - Request construction with proper headers
// - Mapping non-2xx responses to *Error
// - Mapping undecodable bodies to *DecodeError
// - Context cancellation
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	c.logDebugf("spotify: GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("spotify: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "showfinder/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("spotify: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var envelope apiError
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Message = envelope.Error.Message
		}
		c.logDebugf("spotify: %s failed: %v", path, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}

	c.logDebugf("spotify: %s succeeded", path)
	return nil
}
