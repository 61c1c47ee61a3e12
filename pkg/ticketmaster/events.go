package ticketmaster

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

// EventService provides event search.
type EventService struct {
	client *Client
}

// Unit is the unit of a search radius.
type Unit string

const (
	Miles      Unit = "miles"
	Kilometers Unit = "km"
)

// SearchParams filters an event search. Zero values are omitted.
type SearchParams struct {
	Keyword            string
	City               string
	StateCode          string
	CountryCode        string
	Radius             int
	Unit               Unit
	ClassificationName string // e.g. "music"
	Sort               string // defaults to "date,asc"
	Size               int    // page size, API default is 20
}

// ErrNoKeyword is returned when a search has no keyword.
var ErrNoKeyword = errors.New("ticketmaster: keyword is required")

// Search returns the first page of events matching params.
//
// A search with no matches returns an empty slice and no error.
func (s *EventService) Search(ctx context.Context, params SearchParams) ([]Event, error) {
	if params.Keyword == "" {
		return nil, ErrNoKeyword
	}

	query := url.Values{}
	query.Set("keyword", params.Keyword)
	setIf(query, "city", params.City)
	setIf(query, "stateCode", params.StateCode)
	setIf(query, "countryCode", params.CountryCode)
	setIf(query, "classificationName", params.ClassificationName)
	if params.Radius > 0 {
		query.Set("radius", strconv.Itoa(params.Radius))
		unit := params.Unit
		if unit == "" {
			unit = Miles
		}
		query.Set("unit", string(unit))
	}
	sort := params.Sort
	if sort == "" {
		sort = "date,asc"
	}
	query.Set("sort", sort)
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}

	var resp SearchResponse
	if err := s.client.get(ctx, "/events.json", query, &resp); err != nil {
		return nil, err
	}

	events := resp.Events()
	s.client.logDebugf("ticketmaster: %d events for %q", len(events), params.Keyword)
	return events, nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
