package ticketmaster

// SearchResponse is the body of /events.json. Embedded is absent when no
// event matched.
type SearchResponse struct {
	Embedded *struct {
		Events []Event `json:"events"`
	} `json:"_embedded"`
	Page Page `json:"page"`
}

// Page describes the paging window of a search.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Event is a Discovery API event. Every nested object may be missing.
type Event struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Dates    *Dates         `json:"dates"`
	Embedded *EventEmbedded `json:"_embedded"`
}

// Dates holds the start of an event in venue-local terms.
type Dates struct {
	Start *struct {
		LocalDate      string `json:"localDate"`
		LocalTime      string `json:"localTime"`
		DateTime       string `json:"dateTime"`
		DateTBD        bool   `json:"dateTBD"`
		TimeTBA        bool   `json:"timeTBA"`
		NoSpecificTime bool   `json:"noSpecificTime"`
	} `json:"start"`
	Timezone string `json:"timezone"`
}

// EventEmbedded holds the venues and attractions linked to an event.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

// Venue is a place where events happen.
type Venue struct {
	Name string `json:"name"`
	City *struct {
		Name string `json:"name"`
	} `json:"city"`
	State *struct {
		Name      string `json:"name"`
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Country *struct {
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
	} `json:"country"`
}

// Attraction is a performer billed on an event.
type Attraction struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Events returns the embedded events, or nil when none were returned.
func (r *SearchResponse) Events() []Event {
	if r == nil || r.Embedded == nil {
		return nil
	}
	return r.Embedded.Events
}

// LocalDate returns the venue-local start date (YYYY-MM-DD) or "".
func (e *Event) LocalDate() string {
	if e == nil || e.Dates == nil || e.Dates.Start == nil {
		return ""
	}
	return e.Dates.Start.LocalDate
}

// LocalTime returns the venue-local start time (HH:MM:SS) or "" when the
// time is unknown or announced as TBA.
func (e *Event) LocalTime() string {
	if e == nil || e.Dates == nil || e.Dates.Start == nil {
		return ""
	}
	if e.Dates.Start.TimeTBA || e.Dates.Start.NoSpecificTime {
		return ""
	}
	return e.Dates.Start.LocalTime
}

// venue returns the primary venue, or nil.
func (e *Event) venue() *Venue {
	if e == nil || e.Embedded == nil || len(e.Embedded.Venues) == 0 {
		return nil
	}
	return &e.Embedded.Venues[0]
}

// VenueName returns the primary venue's name or "".
func (e *Event) VenueName() string {
	if v := e.venue(); v != nil {
		return v.Name
	}
	return ""
}

// CityName returns the primary venue's city or "".
func (e *Event) CityName() string {
	if v := e.venue(); v != nil && v.City != nil {
		return v.City.Name
	}
	return ""
}

// StateCode returns the primary venue's state or province code or "".
func (e *Event) StateCode() string {
	if v := e.venue(); v != nil && v.State != nil {
		return v.State.StateCode
	}
	return ""
}

// AttractionNames returns the billed attractions in API order.
func (e *Event) AttractionNames() []string {
	if e == nil || e.Embedded == nil {
		return nil
	}
	names := make([]string, 0, len(e.Embedded.Attractions))
	for _, a := range e.Embedded.Attractions {
		names = append(names, a.Name)
	}
	return names
}
