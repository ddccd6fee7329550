package convert

import "github.com/knakagawa/docmd/core"

// NewDefaultRegistry returns a registry with every built-in converter
// bound to its format tag. Callers may register additional converters
// on top before handing the registry to the pipeline.
func NewDefaultRegistry() *core.Registry {
	r := core.NewRegistry()

	text := NewTextConverter()
	r.Register(core.FormatText, text)
	r.Register(core.FormatMarkdown, text)

	r.Register(core.FormatCode, NewCodeConverter())
	r.Register(core.FormatCSV, NewCSVConverter())
	r.Register(core.FormatTSV, NewTSVConverter())
	r.Register(core.FormatHTML, NewHTMLConverter())
	r.Register(core.FormatJSON, NewJSONConverter())
	r.Register(core.FormatYAML, NewYAMLConverter())
	r.Register(core.FormatDOCX, NewDOCXConverter())
	r.Register(core.FormatODT, NewODTConverter())
	r.Register(core.FormatXLSX, NewXLSXConverter())
	r.Register(core.FormatPDF, NewPDFConverter())
	r.Register(core.FormatImage, NewImageConverter(""))

	return r
}
