// Package core defines the conversion pipeline for docmd.
// Every input passes through the same sequence: detect the format,
// look up a converter in the registry, produce Markdown.
package core

import "context"

// Format tags a recognized input file family (e.g. "csv", "docx", "image").
// The set is open: callers may register converters for their own tags.
type Format string

// Formats recognized by the built-in detector and converters.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCode     Format = "code"
	FormatDOCX     Format = "docx"
	FormatODT      Format = "odt"
	FormatXLSX     Format = "xlsx"
	FormatPDF      Format = "pdf"
	FormatImage    Format = "image"
)

// Source is the input handed to a Converter: the raw bytes plus the
// originating path (used for titles, image references, and language tags).
// Path may be empty for in-memory input.
type Source struct {
	Path string
	Data []byte
}

// Request describes a single conversion. Data may be nil, in which case
// the pipeline reads the file at Path. Format, when non-empty, overrides
// detection.
type Request struct {
	Path   string
	Data   []byte
	Format Format
}

// Result holds the outcome of a conversion.
type Result struct {
	Format   Format
	Markdown string
}

// Detector classifies an input into a Format. data may be nil when only
// the filename is available.
type Detector interface {
	Detect(path string, data []byte) (Format, error)
}

// Converter transforms source bytes of one format family into Markdown text.
type Converter interface {
	Convert(ctx context.Context, src Source) (string, error)
}
