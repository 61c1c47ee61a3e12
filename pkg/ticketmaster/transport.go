package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// faultResponse covers both error envelopes the Discovery API uses: gateway
// faults (bad key, quota) and API errors (bad parameters).
type faultResponse struct {
	Fault *struct {
		FaultString string `json:"faultstring"`
		Detail      struct {
			ErrorCode string `json:"errorcode"`
		} `json:"detail"`
	} `json:"fault"`
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// get issues a GET request with the API key attached and decodes the
// JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	params := url.Values{}
	for k, v := range query {
		params[k] = v
	}
	params.Set("apikey", c.apiKey)

	endpoint := strings.TrimRight(c.baseURL, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("ticketmaster: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "showfinder/1.0")

	c.logDebugf("ticketmaster: GET %s keyword=%q", path, query.Get("keyword"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ticketmaster: http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ticketmaster: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// parseError builds an *Error from a non-2xx body, tolerating bodies that
// are not JSON at all.
func parseError(status int, body []byte) *Error {
	apiErr := &Error{StatusCode: status}

	var fault faultResponse
	if json.Unmarshal(body, &fault) != nil {
		return apiErr
	}

	switch {
	case fault.Fault != nil:
		apiErr.Code = fault.Fault.Detail.ErrorCode
		apiErr.Message = fault.Fault.FaultString
	case len(fault.Errors) > 0:
		apiErr.Code = fault.Errors[0].Code
		apiErr.Message = fault.Errors[0].Detail
	}
	return apiErr
}
