package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfmyers9/showfinder/internal/upstream"
	"github.com/jfmyers9/showfinder/pkg/ticketmaster"
)

// Ticketmaster finds events with the Discovery API event search.
type Ticketmaster struct {
	client *ticketmaster.Client
	limit  int
}

// NewTicketmaster creates a provider returning at most limit events per
// artist.
func NewTicketmaster(client *ticketmaster.Client, limit int) *Ticketmaster {
	return &Ticketmaster{client: client, limit: limit}
}

// Name implements Provider.
func (t *Ticketmaster) Name() ProviderName {
	return ProviderTicketmaster
}

// FindEvents implements Provider.
func (t *Ticketmaster) FindEvents(ctx context.Context, artist string, loc Location) ([]RawEvent, error) {
	found, err := t.client.Events().Search(ctx, ticketmaster.SearchParams{
		Keyword:            artist,
		City:               loc.City,
		StateCode:          loc.StateCode,
		CountryCode:        loc.CountryCode,
		Radius:             loc.Radius,
		Unit:               ticketmasterUnit(loc.Unit),
		ClassificationName: "music",
		Sort:               "date,asc",
		Size:               t.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("ticketmaster search for %q: %w", artist, upstream.Classify(err))
	}

	raw := make([]RawEvent, 0, len(found))
	for i := range found {
		if t.limit > 0 && len(raw) == t.limit {
			break
		}
		raw = append(raw, FromTicketmaster(&found[i]))
	}
	return raw, nil
}

func ticketmasterUnit(unit string) ticketmaster.Unit {
	switch strings.ToLower(unit) {
	case "km", "kilometers", "kilometres":
		return ticketmaster.Kilometers
	default:
		return ticketmaster.Miles
	}
}
