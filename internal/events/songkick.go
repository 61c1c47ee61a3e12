package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmyers9/showfinder/internal/upstream"
	"github.com/jfmyers9/showfinder/pkg/songkick"
)

// maxCalendarPages bounds the calendar pages read for one artist.
const maxCalendarPages = 10

// Songkick finds events by resolving the artist and reading its calendar.
// The calendar has no location filter, so events are matched to the
// location's city here, reading calendar pages until the cap is filled.
// Radius is not used.
type Songkick struct {
	client *songkick.Client
	limit  int
}

// NewSongkick creates a provider returning at most limit events per artist.
func NewSongkick(client *songkick.Client, limit int) *Songkick {
	return &Songkick{client: client, limit: limit}
}

// Name implements Provider.
func (s *Songkick) Name() ProviderName {
	return ProviderSongkick
}

// FindEvents implements Provider.
func (s *Songkick) FindEvents(ctx context.Context, artist string, loc Location) ([]RawEvent, error) {
	candidates, err := s.client.Artists().Search(ctx, artist)
	if err != nil {
		return nil, fmt.Errorf("songkick artist search for %q: %w", artist, upstream.Classify(err))
	}

	match, ok := pickArtist(candidates, artist)
	if !ok {
		return []RawEvent{}, nil
	}

	raw := make([]RawEvent, 0, s.limit)
	for pageNum := 1; pageNum <= maxCalendarPages; pageNum++ {
		page, err := s.client.Artists().CalendarPage(ctx, match.ID, pageNum, 0)
		if err != nil {
			return nil, fmt.Errorf("songkick calendar for %q: %w", artist, upstream.Classify(err))
		}

		for i := range page.Events {
			if !inCity(&page.Events[i], loc.City) {
				continue
			}
			raw = append(raw, FromSongkick(&page.Events[i]))
			if s.limit > 0 && len(raw) == s.limit {
				return raw, nil
			}
		}
		if !page.HasNext() {
			break
		}
	}
	return raw, nil
}

// pickArtist prefers a hit whose name equals name, ignoring case, and
// otherwise takes the first hit.
func pickArtist(candidates []songkick.Artist, name string) (songkick.Artist, bool) {
	if len(candidates) == 0 {
		return songkick.Artist{}, false
	}
	for _, c := range candidates {
		if strings.EqualFold(strings.TrimSpace(c.DisplayName), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return candidates[0], true
}

func inCity(e *songkick.Event, city string) bool {
	if city == "" {
		return true
	}
	return strings.EqualFold(e.CityName(), city)
}
