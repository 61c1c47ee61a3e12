// Package render writes a concert ResultSet as a table, markdown or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

// Columns is the fixed column order of every rendering.
var Columns = []string{"Artist", "Date", "Venue", "City", "Time", "Event", "Opening Act", "Link"}

// Format selects an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat parses a format name. Empty means FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatMarkdown, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, markdown or json)", s)
	}
}

// Options controls rendering
type Options struct {
	Format Format
	Width  int // Maximum table column width in display columns, 0 for no limit
}

// Render writes rs to w.
func Render(w io.Writer, rs concerts.ResultSet, opts Options) error {
	switch opts.Format {
	case FormatTable, "":
		return writeTable(w, rs, opts.Width)
	case FormatMarkdown:
		return writeMarkdown(w, rs)
	case FormatJSON:
		return writeJSON(w, rs)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Row returns the cells of e in Columns order. markup selects the
// markdown form of the ticket link.
func Row(e concerts.Event, markup bool) []string {
	link := e.TicketLink()
	if markup {
		link = e.TicketMarkup()
	}
	return []string{
		e.Artist,
		e.DateDisplay(),
		e.Venue,
		e.City,
		e.Time,
		e.Title,
		e.OpeningActsDisplay(),
		link,
	}
}
