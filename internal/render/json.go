package render

import (
	"encoding/json"
	"io"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

// jsonEvent is the JSON form of an event. Keys follow Columns.
type jsonEvent struct {
	Artist      string   `json:"artist"`
	Date        string   `json:"date"`
	Venue       string   `json:"venue"`
	City        string   `json:"city"`
	Time        string   `json:"time"`
	Event       string   `json:"event"`
	OpeningActs []string `json:"opening_acts"`
	Link        string   `json:"link"`
}

func writeJSON(w io.Writer, rs concerts.ResultSet) error {
	out := make([]jsonEvent, 0, len(rs))
	for _, e := range rs {
		acts := e.OpeningActs
		if acts == nil {
			acts = []string{}
		}
		out = append(out, jsonEvent{
			Artist:      e.Artist,
			Date:        e.Date.Format("2006-01-02"),
			Venue:       e.Venue,
			City:        e.City,
			Time:        e.Time,
			Event:       e.Title,
			OpeningActs: acts,
			Link:        e.TicketURL,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
