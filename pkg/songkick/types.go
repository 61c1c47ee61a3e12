package songkick

import (
	"strings"
)

// Artist is an artist search hit.
type Artist struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	URI         string `json:"uri"`
	OnTourUntil string `json:"onTourUntil"`
}

// Event is a concert or festival on an artist's calendar. Every nested
// object may be missing.
type Event struct {
	ID          int64         `json:"id"`
	DisplayName string        `json:"displayName"`
	Type        string        `json:"type"`
	URI         string        `json:"uri"`
	Status      string        `json:"status"`
	Start       *Start        `json:"start"`
	Performance []Performance `json:"performance"`
	Location    *struct {
		City string  `json:"city"`
		Lat  float64 `json:"lat"`
		Lng  float64 `json:"lng"`
	} `json:"location"`
	Venue *Venue `json:"venue"`
}

// Start is the start of an event in venue-local terms.
type Start struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Datetime string `json:"datetime"`
}

// Performance is one act on an event's bill.
type Performance struct {
	DisplayName  string `json:"displayName"`
	Billing      string `json:"billing"` // "headline" or "support"
	BillingIndex int    `json:"billingIndex"`
	Artist       *struct {
		ID          int64  `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"artist"`
}

// Venue is where an event takes place.
type Venue struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	MetroArea   *struct {
		DisplayName string `json:"displayName"`
		State       *struct {
			DisplayName string `json:"displayName"`
		} `json:"state"`
		Country *struct {
			DisplayName string `json:"displayName"`
		} `json:"country"`
	} `json:"metroArea"`
}

// LocalDate returns the start date (YYYY-MM-DD) or "".
func (e *Event) LocalDate() string {
	if e == nil || e.Start == nil {
		return ""
	}
	return e.Start.Date
}

// LocalTime returns the start time (HH:MM:SS) or "". When only the
// datetime is set its clock part is used.
func (e *Event) LocalTime() string {
	if e == nil || e.Start == nil {
		return ""
	}
	if e.Start.Time != "" {
		return e.Start.Time
	}
	// 2024-07-04T19:30:00-0400
	if len(e.Start.Datetime) >= 19 && e.Start.Datetime[10] == 'T' {
		return e.Start.Datetime[11:19]
	}
	return ""
}

// VenueName returns the venue's display name or "".
func (e *Event) VenueName() string {
	if e == nil || e.Venue == nil {
		return ""
	}
	return e.Venue.DisplayName
}

// CityName returns the venue's metro area, falling back to the first
// component of the event location ("New York, NY, US" → "New York").
func (e *Event) CityName() string {
	if e == nil {
		return ""
	}
	if e.Venue != nil && e.Venue.MetroArea != nil && e.Venue.MetroArea.DisplayName != "" {
		return e.Venue.MetroArea.DisplayName
	}
	if e.Location != nil && e.Location.City != "" {
		city, _, _ := strings.Cut(e.Location.City, ",")
		return strings.TrimSpace(city)
	}
	return ""
}

// StateCode returns the metro area's state or "".
func (e *Event) StateCode() string {
	if e == nil || e.Venue == nil || e.Venue.MetroArea == nil || e.Venue.MetroArea.State == nil {
		return ""
	}
	return e.Venue.MetroArea.State.DisplayName
}

// PerformerNames returns the billed acts in billing order as returned by
// the API.
func (e *Event) PerformerNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Performance))
	for _, p := range e.Performance {
		name := p.DisplayName
		if name == "" && p.Artist != nil {
			name = p.Artist.DisplayName
		}
		names = append(names, name)
	}
	return names
}
