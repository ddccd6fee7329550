package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/knakagawa/docmd/core"
)

// XLSXConverter turns a spreadsheet into Markdown: one "## <sheet>"
// heading per sheet, rows rendered as a pipe table with the first row
// as the header.
type XLSXConverter struct{}

// NewXLSXConverter creates an XLSXConverter.
func NewXLSXConverter() *XLSXConverter {
	return &XLSXConverter{}
}

// Convert renders every sheet in workbook order. Empty sheets are kept
// as headings with a "(no data)" marker so the sheet list stays complete.
func (c *XLSXConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(src.Data))
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	writeTitleHeading(&b, src.Path)

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		fmt.Fprintf(&b, "## %s\n\n", sheet)
		if table := pipeTable(rows); table != "" {
			b.WriteString(table)
		} else {
			b.WriteString("*(no data)*\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}
