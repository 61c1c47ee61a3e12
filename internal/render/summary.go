package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

// EmptyMessage is shown when a run found no concerts at all.
func EmptyMessage(city string) string {
	return fmt.Sprintf("No upcoming concerts found for your top artists near %s.", city)
}

// FailureSummary reports how many artist lookups failed, or "" when none
// did.
func FailureSummary(r *concerts.Report) string {
	if r == nil || len(r.Failures) == 0 {
		return ""
	}
	return fmt.Sprintf("%d of %d artist lookups failed", len(r.Failures), r.Artists)
}

// Summary describes a non-empty result in one line, e.g.
// "12 concerts from 7 artists near New York. Next: Big Thief on Jul 04 2024 (3 days from now)."
func Summary(r *concerts.Report, where string, now time.Time) string {
	if r.Empty() {
		return EmptyMessage(where)
	}

	line := fmt.Sprintf("%s from %s near %s.",
		plural(len(r.Events), "concert"), plural(r.Events.ArtistCount(), "artist"), where)

	next, ok := r.Events.Next(now)
	if !ok {
		return line
	}
	return fmt.Sprintf("%s Next: %s on %s (%s).", line, next.Artist, next.DateDisplay(), relativeDay(next.Date, now))
}

func relativeDay(date, now time.Time) string {
	y, m, d := now.Date()
	if date.Equal(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)) {
		return "today"
	}
	return humanize.RelTime(date, now, "ago", "from now")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
