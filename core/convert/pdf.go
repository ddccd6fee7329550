package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/knakagawa/docmd/core"
)

// PDFConverter extracts the embedded text of a PDF into Markdown, one
// "## Page N" section per page. Scanned PDFs without a text layer fail
// rather than silently producing an empty document.
type PDFConverter struct{}

// NewPDFConverter creates a PDFConverter.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

// Convert walks the page tree and emits cleaned per-page text.
func (c *PDFConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(src.Data), int64(len(src.Data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var b strings.Builder
	writeTitleHeading(&b, src.Path)

	extracted := false
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i, err)
		}
		paragraphs := pageParagraphs(text)
		if len(paragraphs) == 0 {
			continue
		}
		extracted = true
		fmt.Fprintf(&b, "## Page %d\n\n%s\n\n", i, strings.Join(paragraphs, "\n\n"))
	}

	if !extracted {
		return "", fmt.Errorf("%s: no extractable text (scanned or image-only PDF)", src.Path)
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// pageParagraphs splits extracted page text on blank lines and cleans
// each paragraph on its own, so paragraph breaks survive the whitespace
// normalization. Empty paragraphs are dropped.
func pageParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = cleanCell(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
