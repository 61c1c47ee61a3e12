package concerts

import (
	"sort"
	"time"
)

// Aggregate merges per-artist events into one ResultSet. Events without a
// date are dropped. The sort is stable so same-day events stay in artist
// order.
func Aggregate(perArtist [][]Event) ResultSet {
	n := 0
	for _, evs := range perArtist {
		n += len(evs)
	}

	out := make(ResultSet, 0, n)
	for _, evs := range perArtist {
		for _, e := range evs {
			if e.Date.IsZero() {
				continue
			}
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Next returns the first event on or after the day of now.
func (rs ResultSet) Next(now time.Time) (Event, bool) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for _, e := range rs {
		if !e.Date.Before(today) {
			return e, true
		}
	}
	return Event{}, false
}

// ArtistCount returns the number of distinct artists with events.
func (rs ResultSet) ArtistCount() int {
	seen := make(map[string]struct{}, len(rs))
	for _, e := range rs {
		seen[e.Artist] = struct{}{}
	}
	return len(seen)
}
