// Package output handles file naming and writing for docmd results.
// The default target is a sibling .md file next to the input; an output
// directory collects all results in one place instead.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes converted Markdown to disk.
type Writer struct {
	// OutputDir collects outputs in one directory when set. When empty,
	// each output lands next to its input.
	OutputDir string
}

// New creates a Writer. When outputDir is non-empty it is created up front.
func New(outputDir string) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write stores the Markdown for the given input and returns the path written.
func (w *Writer) Write(input string, markdown string) (string, error) {
	path := w.TargetPath(input)
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// TargetPath resolves the output filename for an input path or URL:
// <stem>.md in the input's directory (the working directory for URLs),
// or in OutputDir when set. When the resolved name would be the input
// itself (a Markdown source converting in place), the output becomes
// <stem>.out.md so the source is never overwritten.
func (w *Writer) TargetPath(input string) string {
	dir := w.OutputDir
	if dir == "" {
		if asURL(input) != nil {
			dir = "."
		} else {
			dir = filepath.Dir(input)
		}
	}
	path := filepath.Join(dir, stemOf(input)+".md")
	if filepath.Clean(path) == filepath.Clean(input) {
		path = filepath.Join(dir, stemOf(input)+".out.md")
	}
	return path
}

// asURL returns the parsed URL when input names a remote document,
// nil otherwise.
func asURL(input string) *url.URL {
	parsed, err := url.Parse(input)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil
	}
	return parsed
}

// stemOf derives the output file stem from a local path or a URL.
// URLs flatten to host_path (e.g. https://example.com/docs → example_com_docs).
func stemOf(input string) string {
	if parsed := asURL(input); parsed != nil {
		parts := []string{sanitize(parsed.Host)}
		for _, seg := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
			if seg != "" {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
