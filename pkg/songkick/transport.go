package songkick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const apiStatusError = "error"

// pageInfo is the paging part of a resultsPage envelope.
type pageInfo struct {
	TotalEntries int
	PerPage      int
	Page         int
}

// resultsPage is the envelope around every Songkick response. Results is
// decoded by the caller since its shape depends on the endpoint.
type resultsPage struct {
	ResultsPage struct {
		Status       string          `json:"status"`
		Results      json.RawMessage `json:"results"`
		TotalEntries int             `json:"totalEntries"`
		PerPage      int             `json:"perPage"`
		Page         int             `json:"page"`
		Error        *struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"resultsPage"`
}

// get issues a GET request, decodes resultsPage.results into out and
// returns the envelope's paging fields. An absent or empty results object
// leaves out untouched.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (pageInfo, error) {
	params := url.Values{}
	for k, v := range query {
		params[k] = v
	}
	params.Set("apikey", c.apiKey)

	endpoint := strings.TrimRight(c.baseURL, "/") + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return pageInfo{}, fmt.Errorf("songkick: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "showfinder/1.0")

	c.logDebugf("songkick: GET %s", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pageInfo{}, fmt.Errorf("songkick: http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pageInfo{}, fmt.Errorf("songkick: failed to read response: %w", err)
	}

	var page resultsPage
	decodeErr := json.Unmarshal(body, &page)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if decodeErr == nil && page.ResultsPage.Error != nil {
			apiErr.Message = page.ResultsPage.Error.Message
		}
		return pageInfo{}, apiErr
	}
	if decodeErr != nil {
		return pageInfo{}, &DecodeError{Err: decodeErr}
	}

	if page.ResultsPage.Status == apiStatusError {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if page.ResultsPage.Error != nil {
			apiErr.Message = page.ResultsPage.Error.Message
		}
		return pageInfo{}, apiErr
	}

	info := pageInfo{
		TotalEntries: page.ResultsPage.TotalEntries,
		PerPage:      page.ResultsPage.PerPage,
		Page:         page.ResultsPage.Page,
	}
	if len(page.ResultsPage.Results) == 0 || string(page.ResultsPage.Results) == "null" {
		return info, nil
	}
	if err := json.Unmarshal(page.ResultsPage.Results, out); err != nil {
		return pageInfo{}, &DecodeError{Err: err}
	}
	return info, nil
}
