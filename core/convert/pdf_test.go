package convert

import (
	"bytes"
	"context"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/docmd/core"
)

// samplePDF generates a two-page PDF with embedded text.
func samplePDF(t *testing.T) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)

	doc.AddPage()
	doc.Cell(40, 10, "Hello first page")
	doc.AddPage()
	doc.Cell(40, 10, "Second page content")

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestPDFConverter(t *testing.T) {
	c := NewPDFConverter()

	got, err := c.Convert(context.Background(), core.Source{Path: "paper.pdf", Data: samplePDF(t)})
	require.NoError(t, err)

	assert.Contains(t, got, "# paper.pdf")
	assert.Contains(t, got, "## Page 1")
	assert.Contains(t, got, "Hello first page")
	assert.Contains(t, got, "## Page 2")
	assert.Contains(t, got, "Second page content")
}

func TestPageParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single paragraph",
			text: "one  line\nwraps here",
			want: []string{"one line wraps here"},
		},
		{
			name: "blank lines separate paragraphs",
			text: "First paragraph\ncontinues.\n\nSecond paragraph.\n\nThird.",
			want: []string{"First paragraph continues.", "Second paragraph.", "Third."},
		},
		{
			name: "empty paragraphs dropped",
			text: "\n\n  \n\nonly content\n\n\t\n\n",
			want: []string{"only content"},
		},
		{
			name: "no text",
			text: "   \n\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageParagraphs(tt.text))
		})
	}
}

func TestPDFConverterNoTextLayer(t *testing.T) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	c := NewPDFConverter()
	_, err := c.Convert(context.Background(), core.Source{Path: "scan.pdf", Data: buf.Bytes()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extractable text")
}

func TestPDFConverterInvalidData(t *testing.T) {
	c := NewPDFConverter()

	_, err := c.Convert(context.Background(), core.Source{Path: "bad.pdf", Data: []byte("not a pdf")})
	assert.Error(t, err)
}
