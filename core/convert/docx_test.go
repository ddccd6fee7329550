package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/docmd/core"
)

// buildZip assembles an in-memory zip container from name→content pairs.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
      <w:r><w:t>Introduction</w:t></w:r>
    </w:p>
    <w:p>
      <w:r><w:t>Plain text with </w:t></w:r>
      <w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r>
      <w:r><w:t> and </w:t></w:r>
      <w:r><w:rPr><w:i/></w:rPr><w:t>italic</w:t></w:r>
      <w:r><w:t> runs.</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:numPr><w:ilvl w:val="0"/></w:numPr></w:pPr>
      <w:r><w:t>first item</w:t></w:r>
    </w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Age</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Alice</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>30</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func sampleDocx(t *testing.T) []byte {
	t.Helper()
	return buildZip(t, map[string]string{"word/document.xml": sampleDocumentXML})
}

func TestDOCXConverter(t *testing.T) {
	c := NewDOCXConverter()

	got, err := c.Convert(context.Background(), core.Source{Path: "report.docx", Data: sampleDocx(t)})
	require.NoError(t, err)

	assert.Contains(t, got, "# report.docx")
	assert.Contains(t, got, "# Introduction")
	assert.Contains(t, got, "**bold**")
	assert.Contains(t, got, "*italic*")
	assert.Contains(t, got, "- first item")
	assert.Contains(t, got, "|Name|Age|")
	assert.Contains(t, got, "|---|---|")
	assert.Contains(t, got, "|Alice|30|")
}

func TestDOCXConverterNoTitleWithoutPath(t *testing.T) {
	c := NewDOCXConverter()

	got, err := c.Convert(context.Background(), core.Source{Data: sampleDocx(t)})
	require.NoError(t, err)
	assert.NotContains(t, got, "# report.docx")
	assert.Contains(t, got, "# Introduction")
}

func TestDOCXConverterMissingDocumentXML(t *testing.T) {
	c := NewDOCXConverter()
	data := buildZip(t, map[string]string{"other.xml": "<x/>"})

	_, err := c.Convert(context.Background(), core.Source{Path: "bad.docx", Data: data})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestDOCXConverterNotAZip(t *testing.T) {
	c := NewDOCXConverter()

	_, err := c.Convert(context.Background(), core.Source{Path: "bad.docx", Data: []byte("not a zip")})
	assert.Error(t, err)
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Title", 1},
		{"Heading1", 1},
		{"Heading3", 3},
		{"Heading9", 6},
		{"BodyText", 0},
		{"Heading", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, headingLevel(tt.style), "style %q", tt.style)
	}
}
