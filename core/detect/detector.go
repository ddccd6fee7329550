// Package detect implements the format Detector.
// The file extension decides first; content sniffing (mimetype) is the
// fallback for unknown or missing extensions.
package detect

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/knakagawa/docmd/core"
)

// extFormats maps file extensions to format tags. One tag per family:
// code source files all share "code", raster images all share "image".
var extFormats = map[string]core.Format{
	".txt":      core.FormatText,
	".text":     core.FormatText,
	".log":      core.FormatText,
	".md":       core.FormatMarkdown,
	".markdown": core.FormatMarkdown,
	".csv":      core.FormatCSV,
	".tsv":      core.FormatTSV,
	".html":     core.FormatHTML,
	".htm":      core.FormatHTML,
	".json":     core.FormatJSON,
	".yaml":     core.FormatYAML,
	".yml":      core.FormatYAML,
	".go":       core.FormatCode,
	".py":       core.FormatCode,
	".js":       core.FormatCode,
	".ts":       core.FormatCode,
	".java":     core.FormatCode,
	".c":        core.FormatCode,
	".cpp":      core.FormatCode,
	".h":        core.FormatCode,
	".rs":       core.FormatCode,
	".rb":       core.FormatCode,
	".sh":       core.FormatCode,
	".sql":      core.FormatCode,
	".css":      core.FormatCode,
	".xml":      core.FormatCode,
	".toml":     core.FormatCode,
	".ini":      core.FormatCode,
	".docx":     core.FormatDOCX,
	".odt":      core.FormatODT,
	".xlsx":     core.FormatXLSX,
	".pdf":      core.FormatPDF,
	".png":      core.FormatImage,
	".jpg":      core.FormatImage,
	".jpeg":     core.FormatImage,
	".gif":      core.FormatImage,
}

// Detector classifies inputs by extension, then by content.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the format tag for the given path and content.
// An unknown extension with unsniffable content fails with
// core.ErrUnsupportedFormat.
func (d *Detector) Detect(path string, data []byte) (core.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}

	if len(data) > 0 {
		if f, ok := sniff(data); ok {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, path)
}

// sniff classifies content by MIME type.
func sniff(data []byte) (core.Format, bool) {
	m := mimetype.Detect(data)
	switch {
	case m.Is("application/pdf"):
		return core.FormatPDF, true
	case m.Is("text/html"):
		return core.FormatHTML, true
	case m.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return core.FormatDOCX, true
	case m.Is("application/vnd.oasis.opendocument.text"):
		return core.FormatODT, true
	case m.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return core.FormatXLSX, true
	case m.Is("text/csv"):
		return core.FormatCSV, true
	case m.Is("text/tab-separated-values"):
		return core.FormatTSV, true
	case m.Is("application/json"):
		return core.FormatJSON, true
	case strings.HasPrefix(m.String(), "image/"):
		return core.FormatImage, true
	case strings.HasPrefix(m.String(), "text/"):
		return core.FormatText, true
	}
	return "", false
}

// Extensions returns all extensions mapped to the given format tag,
// sorted alphabetically.
func Extensions(f core.Format) []string {
	var exts []string
	for ext, format := range extFormats {
		if format == f {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Supported reports whether the extension of path maps to a known format.
func Supported(path string) bool {
	_, ok := extFormats[strings.ToLower(filepath.Ext(path))]
	return ok
}
