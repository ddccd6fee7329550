package convert

import (
	"path/filepath"
	"regexp"
	"strings"
)

// fileTitle returns the file name used for document title headings,
// or "" when the source has no path (in-memory input).
func fileTitle(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanCell collapses runs of whitespace and trims the result.
func cleanCell(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// escapeCell makes a value safe inside a pipe table: pipes are escaped and
// newlines become <br> so the row stays on one line.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}

// pipeTable renders rows as a Markdown table. The first row is the header.
// Ragged rows are padded to the widest row. Returns "" for empty input.
func pipeTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i := 0; i < width; i++ {
			if i < len(row) {
				b.WriteString(escapeCell(row[i]))
			}
			b.WriteString("|")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("|")
	for i := 0; i < width; i++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return b.String()
}
