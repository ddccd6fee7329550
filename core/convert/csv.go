package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/knakagawa/docmd/core"
)

// CSVConverter turns delimited text into a Markdown pipe table.
// The first record becomes the header row.
type CSVConverter struct {
	comma rune
}

// NewCSVConverter creates a converter for comma-separated input.
func NewCSVConverter() *CSVConverter {
	return &CSVConverter{comma: ','}
}

// NewTSVConverter creates a converter for tab-separated input.
func NewTSVConverter() *CSVConverter {
	return &CSVConverter{comma: '\t'}
}

// Convert parses the input and renders it as a pipe table.
func (c *CSVConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	r := csv.NewReader(bytes.NewReader(src.Data))
	r.Comma = c.comma
	r.FieldsPerRecord = -1 // ragged rows are padded by the table builder
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing delimited text: %w", err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%s: no records found", src.Path)
	}

	return pipeTable(records), nil
}
