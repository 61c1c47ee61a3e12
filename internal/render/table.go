package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

const columnGap = "  "

func writeTable(w io.Writer, rs concerts.ResultSet, maxWidth int) error {
	rows := make([][]string, 0, len(rs)+1)
	rows = append(rows, Columns)
	for _, e := range rs {
		rows = append(rows, Row(e, false))
	}

	widths := make([]int, len(Columns))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	if maxWidth > 0 {
		for i := range widths {
			if widths[i] > maxWidth {
				widths[i] = maxWidth
			}
		}
	}

	bw := bufio.NewWriter(w)
	writeRow(bw, rows[0], widths)
	rule := make([]string, len(widths))
	for i, cw := range widths {
		rule[i] = strings.Repeat("-", cw)
	}
	writeRow(bw, rule, widths)
	for _, row := range rows[1:] {
		writeRow(bw, row, widths)
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = w.WriteString(columnGap)
		}
		if i == len(cells)-1 {
			// No trailing padding on the last column
			_, _ = w.WriteString(strings.TrimRight(padToWidth(cell, widths[i]), " "))
			continue
		}
		_, _ = w.WriteString(padToWidth(cell, widths[i]))
	}
	_, _ = w.WriteString("\n")
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis

		// Wide runes can leave the result one column short
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}
	return text
}
