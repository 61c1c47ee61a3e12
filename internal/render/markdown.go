package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/jfmyers9/showfinder/internal/concerts"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown(w io.Writer, rs concerts.ResultSet) error {
	bw := bufio.NewWriter(w)

	writeMarkdownRow(bw, Columns)
	rule := make([]string, len(Columns))
	for i := range rule {
		rule[i] = "---"
	}
	writeMarkdownRow(bw, rule)

	for _, e := range rs {
		writeMarkdownRow(bw, Row(e, true))
	}
	return bw.Flush()
}

func writeMarkdownRow(w *bufio.Writer, cells []string) {
	_, _ = w.WriteString("|")
	for _, cell := range cells {
		_, _ = w.WriteString(" ")
		_, _ = w.WriteString(markdownEscaper.Replace(cell))
		_, _ = w.WriteString(" |")
	}
	_, _ = w.WriteString("\n")
}
