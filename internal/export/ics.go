package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

// uidNamespace scopes event UIDs so re-imports update existing entries.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jfmyers9/showfinder"))

// Calendar builds an iCalendar with one all-day event per concert.
func Calendar(rs concerts.ResultSet, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//showfinder//concerts//EN")
	cal.SetXWRCalName("Upcoming concerts")

	for _, e := range rs {
		ev := cal.AddEvent(eventUID(e))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(summary(e))
		ev.SetAllDayStartAt(e.Date)
		ev.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		if loc := location(e); loc != "" {
			ev.SetLocation(loc)
		}
		ev.SetDescription(description(e))
		if e.TicketURL != "" {
			ev.SetURL(e.TicketURL)
		}
	}
	return cal
}

// WriteICS writes rs as an iCalendar stream.
func WriteICS(w io.Writer, rs concerts.ResultSet) error {
	_, err := io.WriteString(w, Calendar(rs, time.Now().UTC()).Serialize())
	return err
}

// WriteICSFile writes rs to path, replacing it atomically.
func WriteICSFile(path string, rs concerts.ResultSet) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}
	if err := WriteICS(f, rs); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return os.Rename(tmpPath, path)
}

func eventUID(e concerts.Event) string {
	key := strings.Join([]string{e.Artist, e.Date.Format("2006-01-02"), e.Venue, e.TicketURL}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@showfinder"
}

func summary(e concerts.Event) string {
	if e.Title != "" && !strings.EqualFold(e.Title, e.Artist) {
		return e.Artist + ": " + e.Title
	}
	return e.Artist
}

func location(e concerts.Event) string {
	switch {
	case e.Venue == "":
		return e.City
	case e.City == "":
		return e.Venue
	default:
		return e.Venue + ", " + e.City
	}
}

func description(e concerts.Event) string {
	lines := []string{"Starts: " + e.Time}
	if acts := e.OpeningActsDisplay(); acts != "" {
		lines = append(lines, "With: "+acts)
	}
	if e.TicketURL != "" {
		lines = append(lines, "Tickets: "+e.TicketURL)
	}
	return strings.Join(lines, "\n")
}
