package spotify

// TimeRange selects the affinity window for personalization endpoints.
type TimeRange string

const (
	ShortTerm  TimeRange = "short_term"  // roughly the last 4 weeks
	MediumTerm TimeRange = "medium_term" // roughly the last 6 months
	LongTerm   TimeRange = "long_term"   // roughly the last year
)

// Valid reports whether r is one of the documented time ranges.
func (r TimeRange) Valid() bool {
	switch r {
	case ShortTerm, MediumTerm, LongTerm:
		return true
	default:
		return false
	}
}

// Artist is a full artist object.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Popularity   int          `json:"popularity"`
	Genres       []string     `json:"genres"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// ExternalURLs holds links to the object outside the API.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// ArtistPage is one page of a paged artist listing.
type ArtistPage struct {
	Items  []Artist `json:"items"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	Next   string   `json:"next"`
}

// HasNext reports whether Spotify advertised a following page.
func (p *ArtistPage) HasNext() bool {
	return p != nil && p.Next != ""
}
