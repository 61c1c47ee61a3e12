// Package concerts turns a user's top artists into a date-ordered list
// of upcoming concerts.
package concerts

import (
	"strings"
	"time"
)

const (
	// TimeUnknown is shown when a provider has no start time.
	TimeUnknown = "TBD"

	// DateLayout is the display layout for event dates.
	DateLayout = "Jan 02 2006"
)

// Event is a concert in provider-independent form.
type Event struct {
	Artist      string    // The artist that was searched for
	Date        time.Time // Calendar date at UTC midnight
	Time        string    // e.g. "7:30pm", or TimeUnknown
	Venue       string
	City        string // "City, ST" or "City"
	Title       string
	OpeningActs []string // Never contains Artist
	TicketURL   string
	Provider    string
}

// DateDisplay returns the date as "Jul 04 2024".
func (e Event) DateDisplay() string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format(DateLayout)
}

// OpeningActsDisplay joins the opening acts for display.
func (e Event) OpeningActsDisplay() string {
	return strings.Join(e.OpeningActs, ", ")
}

// TicketLink returns the ticket URL.
func (e Event) TicketLink() string {
	return e.TicketURL
}

// TicketMarkup returns the ticket URL as a markdown link.
func (e Event) TicketMarkup() string {
	if e.TicketURL == "" {
		return ""
	}
	return "[Tickets](" + e.TicketURL + ")"
}

// ResultSet is a list of events ordered by date. Events on the same date
// keep the order in which they were found.
type ResultSet []Event

// ArtistFailure records an artist whose event lookup failed.
type ArtistFailure struct {
	Artist string
	Err    error
}

// Report is the outcome of one pipeline run.
type Report struct {
	RunID    string
	Events   ResultSet
	Artists  int // Artists looked up after exclusions
	Failures []ArtistFailure
	Canceled bool // The run stopped before every lookup finished
}

// Empty reports whether the run found no concerts at all.
func (r *Report) Empty() bool {
	return r == nil || len(r.Events) == 0
}
