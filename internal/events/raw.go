package events

import (
	"github.com/jfmyers9/showfinder/pkg/songkick"
	"github.com/jfmyers9/showfinder/pkg/ticketmaster"
)

// RawEvent is an event as returned by one provider. Exactly one payload
// is set, matching Provider. The accessors never panic and return zero
// values for anything the payload lacks.
type RawEvent struct {
	Provider     ProviderName
	Ticketmaster *ticketmaster.Event
	Songkick     *songkick.Event
}

// FromTicketmaster wraps a Ticketmaster event.
func FromTicketmaster(e *ticketmaster.Event) RawEvent {
	return RawEvent{Provider: ProviderTicketmaster, Ticketmaster: e}
}

// FromSongkick wraps a Songkick event.
func FromSongkick(e *songkick.Event) RawEvent {
	return RawEvent{Provider: ProviderSongkick, Songkick: e}
}

// Date returns the provider's local start date string.
func (r RawEvent) Date() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.LocalDate()
	case r.Songkick != nil:
		return r.Songkick.LocalDate()
	}
	return ""
}

// Time returns the provider's local start time string, "" when unknown.
func (r RawEvent) Time() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.LocalTime()
	case r.Songkick != nil:
		return r.Songkick.LocalTime()
	}
	return ""
}

// Venue returns the venue name.
func (r RawEvent) Venue() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.VenueName()
	case r.Songkick != nil:
		return r.Songkick.VenueName()
	}
	return ""
}

// City returns the venue's city.
func (r RawEvent) City() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.CityName()
	case r.Songkick != nil:
		return r.Songkick.CityName()
	}
	return ""
}

// Region returns the venue's state or region code.
func (r RawEvent) Region() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.StateCode()
	case r.Songkick != nil:
		return r.Songkick.StateCode()
	}
	return ""
}

// Title returns the event name.
func (r RawEvent) Title() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.Name
	case r.Songkick != nil:
		return r.Songkick.DisplayName
	}
	return ""
}

// Performers returns the billed acts in provider order.
func (r RawEvent) Performers() []string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.AttractionNames()
	case r.Songkick != nil:
		return r.Songkick.PerformerNames()
	}
	return nil
}

// URL returns the provider's canonical event page.
func (r RawEvent) URL() string {
	switch {
	case r.Ticketmaster != nil:
		return r.Ticketmaster.URL
	case r.Songkick != nil:
		return r.Songkick.URI
	}
	return ""
}
