package songkick

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ArtistService provides artist search and calendar lookups.
type ArtistService struct {
	client *Client
}

// ErrNoQuery is returned when an artist search has no query.
var ErrNoQuery = errors.New("songkick: query is required")

// Search finds artists by name. No match returns an empty slice.
func (s *ArtistService) Search(ctx context.Context, query string) ([]Artist, error) {
	if query == "" {
		return nil, ErrNoQuery
	}

	params := url.Values{}
	params.Set("query", query)

	var results struct {
		Artist []Artist `json:"artist"`
	}
	if _, err := s.client.get(ctx, "/search/artists.json", params, &results); err != nil {
		return nil, err
	}
	return results.Artist, nil
}

// DefaultPerPage is the calendar page size Songkick uses when none is
// requested.
const DefaultPerPage = 50

// EventPage is one page of an artist calendar.
type EventPage struct {
	Events       []Event
	TotalEntries int
	PerPage      int
	Page         int // 1-based
}

// HasNext reports whether later pages hold more events.
func (p *EventPage) HasNext() bool {
	if p == nil || len(p.Events) == 0 {
		return false
	}
	perPage := p.PerPage
	if perPage <= 0 {
		perPage = len(p.Events)
	}
	return p.Page*perPage < p.TotalEntries
}

// Calendar returns the first page of upcoming events for the artist with
// the given ID, soonest first. perPage of 0 uses DefaultPerPage.
func (s *ArtistService) Calendar(ctx context.Context, artistID int64, perPage int) ([]Event, error) {
	page, err := s.CalendarPage(ctx, artistID, 1, perPage)
	if err != nil {
		return nil, err
	}
	return page.Events, nil
}

// CalendarPage returns one page of upcoming events for the artist with the
// given ID. page is 1-based; perPage of 0 uses DefaultPerPage.
func (s *ArtistService) CalendarPage(ctx context.Context, artistID int64, page, perPage int) (*EventPage, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	var results struct {
		Event []Event `json:"event"`
	}
	path := fmt.Sprintf("/artists/%d/calendar.json", artistID)
	info, err := s.client.get(ctx, path, params, &results)
	if err != nil {
		return nil, err
	}

	out := &EventPage{
		Events:       results.Event,
		TotalEntries: info.TotalEntries,
		PerPage:      info.PerPage,
		Page:         info.Page,
	}
	if out.Page == 0 {
		out.Page = page
	}
	if out.PerPage == 0 {
		out.PerPage = perPage
		if out.PerPage <= 0 {
			out.PerPage = DefaultPerPage
		}
	}

	s.client.logDebugf("songkick: %d events on page %d for artist %d", len(out.Events), out.Page, artistID)
	return out, nil
}
