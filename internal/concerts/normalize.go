package concerts

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jfmyers9/showfinder/internal/events"
)

// Date layouts seen across providers, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// 24-hour clock layouts, tried in order.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

// Normalize maps a provider event to an Event for artist. It returns
// false when the event has no usable date; every other missing field
// gets an empty value or TimeUnknown.
func Normalize(raw events.RawEvent, artist string) (Event, bool) {
	date, ok := parseDate(raw.Date())
	if !ok {
		return Event{}, false
	}

	title := strings.TrimSpace(raw.Title())
	if title == "" {
		title = artist
	}

	return Event{
		Artist:      artist,
		Date:        date,
		Time:        formatTime(raw.Time()),
		Venue:       strings.TrimSpace(raw.Venue()),
		City:        composeCity(raw.City(), raw.Region()),
		Title:       title,
		OpeningActs: openingActs(raw.Performers(), artist),
		TicketURL:   strings.TrimSpace(raw.URL()),
		Provider:    string(raw.Provider),
	}, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// Keep the venue-local calendar day
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// formatTime turns "19:30:00" into "7:30pm".
func formatTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeUnknown
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("3:04pm")
		}
	}
	return TimeUnknown
}

func composeCity(city, region string) string {
	city = strings.TrimSpace(city)
	region = strings.TrimSpace(region)
	switch {
	case city == "":
		return region
	case region == "":
		return city
	default:
		return city + ", " + region
	}
}

// openingActs returns performers other than the headliner, in billing
// order. Names are compared literally, ignoring case.
func openingActs(performers []string, artist string) []string {
	headliner := cases.Fold().String(strings.TrimSpace(artist))

	acts := []string{}
	for _, name := range performers {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if cases.Fold().String(name) == headliner {
			continue
		}
		acts = append(acts, name)
	}
	return acts
}
