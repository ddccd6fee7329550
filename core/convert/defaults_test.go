package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/docmd/core"
)

func TestDefaultRegistryCoversAllFormats(t *testing.T) {
	r := NewDefaultRegistry()

	for _, f := range []core.Format{
		core.FormatText, core.FormatMarkdown, core.FormatCode,
		core.FormatCSV, core.FormatTSV, core.FormatHTML,
		core.FormatJSON, core.FormatYAML,
		core.FormatDOCX, core.FormatODT, core.FormatXLSX,
		core.FormatPDF, core.FormatImage,
	} {
		_, err := r.Lookup(f)
		assert.NoError(t, err, "format %q must have a converter", f)
	}
}

// Minimal valid samples per format must convert to non-empty Markdown.
func TestDefaultRegistryMinimalSamples(t *testing.T) {
	tests := []struct {
		format core.Format
		src    core.Source
	}{
		{core.FormatText, core.Source{Path: "a.txt", Data: []byte("hello\nworld")}},
		{core.FormatMarkdown, core.Source{Path: "a.md", Data: []byte("# hi")}},
		{core.FormatCode, core.Source{Path: "a.go", Data: []byte("package a")}},
		{core.FormatCSV, core.Source{Path: "a.csv", Data: []byte("x,y\n1,2")}},
		{core.FormatTSV, core.Source{Path: "a.tsv", Data: []byte("x\ty\n1\t2")}},
		{core.FormatHTML, core.Source{Path: "a.html", Data: []byte("<html><body><p>hi</p></body></html>")}},
		{core.FormatJSON, core.Source{Path: "a.json", Data: []byte(`{"k":1}`)}},
		{core.FormatYAML, core.Source{Path: "a.yaml", Data: []byte("k: 1")}},
	}

	r := NewDefaultRegistry()
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c, err := r.Lookup(tt.format)
			require.NoError(t, err)

			md, err := c.Convert(context.Background(), tt.src)
			require.NoError(t, err)
			assert.NotEmpty(t, md)
		})
	}
}
