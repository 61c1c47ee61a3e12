// Package events looks up upcoming events for a single artist near a
// location. Two backends implement Provider: Ticketmaster searches events
// by keyword and place, Songkick resolves the artist and reads its
// calendar.
package events

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jfmyers9/showfinder/internal/config"
	"github.com/jfmyers9/showfinder/pkg/songkick"
	"github.com/jfmyers9/showfinder/pkg/ticketmaster"
)

// ProviderName identifies an events backend.
type ProviderName string

const (
	ProviderTicketmaster ProviderName = config.ProviderTicketmaster
	ProviderSongkick     ProviderName = config.ProviderSongkick
)

// DefaultMaxPerArtist caps the events returned for one artist.
const DefaultMaxPerArtist = 5

// Provider finds events for one artist near a location.
//
// Implementations return an empty slice and nil error when nothing
// matched. Errors are classified with the upstream package.
type Provider interface {
	Name() ProviderName
	FindEvents(ctx context.Context, artist string, loc Location) ([]RawEvent, error)
}

// Location is where to look for events: a city and a search radius
// around it. State and country narrow the city when set.
type Location struct {
	City        string
	StateCode   string
	CountryCode string
	Radius      int
	Unit        string // "miles" or "km"
}

// String returns the location as shown to users.
func (l Location) String() string {
	if l.StateCode == "" {
		return l.City
	}
	return l.City + ", " + l.StateCode
}

// LocationFromConfig builds a Location from configuration.
func LocationFromConfig(cfg config.LocationConfig) Location {
	return Location{
		City:        strings.TrimSpace(cfg.City),
		StateCode:   strings.TrimSpace(cfg.StateCode),
		CountryCode: strings.TrimSpace(cfg.CountryCode),
		Radius:      cfg.Radius,
		Unit:        cfg.Unit,
	}
}

// Logger receives debug output from the provider SDKs.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// New creates the provider selected by cfg.Events.Provider. httpClient and
// logger are optional.
func New(cfg *config.Config, httpClient *http.Client, logger Logger) (Provider, error) {
	limit := cfg.Events.MaxPerArtist
	if limit <= 0 {
		limit = DefaultMaxPerArtist
	}

	switch ProviderName(cfg.Events.Provider) {
	case ProviderTicketmaster, "":
		client, err := ticketmaster.NewClient(ticketmaster.Config{
			APIKey:     cfg.Ticketmaster.APIKey,
			HTTPClient: httpClient,
			BaseURL:    cfg.Ticketmaster.BaseURL,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ticketmaster client: %w", err)
		}
		return NewTicketmaster(client, limit), nil

	case ProviderSongkick:
		client, err := songkick.NewClient(songkick.Config{
			APIKey:     cfg.Songkick.APIKey,
			HTTPClient: httpClient,
			BaseURL:    cfg.Songkick.BaseURL,
			Logger:     logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create songkick client: %w", err)
		}
		return NewSongkick(client, limit), nil

	default:
		return nil, fmt.Errorf("unknown events provider %q", cfg.Events.Provider)
	}
}
