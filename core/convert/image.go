package convert

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Register decoders for the supported raster formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dustin/go-humanize"

	"github.com/knakagawa/docmd/core"
	"github.com/knakagawa/docmd/core/fetch"
)

// ImageConverter emits a Markdown image reference plus a metadata line.
// There is no OCR: the image itself is the content, so the output links
// to it and describes what it is.
type ImageConverter struct {
	// OutputDir is the directory the Markdown will be written into.
	// Empty means the output lands next to the input, so the link is
	// just the file name; otherwise the link is made relative to
	// OutputDir so it still resolves from there.
	OutputDir string
}

// NewImageConverter creates an ImageConverter. outputDir matches the
// writer's output directory ("" for sibling output).
func NewImageConverter(outputDir string) *ImageConverter {
	return &ImageConverter{OutputDir: outputDir}
}

// Convert decodes the image header for format and dimensions.
func (c *ImageConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	cfg, kind, err := image.DecodeConfig(bytes.NewReader(src.Data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	name := filepath.Base(src.Path)
	if src.Path == "" {
		name = "image." + kind
	}

	var b strings.Builder
	fmt.Fprintf(&b, "![%s](%s)\n\n", name, c.link(src.Path, name))
	fmt.Fprintf(&b, "*%s image, %dx%d pixels, %s*\n",
		strings.ToUpper(kind), cfg.Width, cfg.Height, humanize.Bytes(uint64(len(src.Data))))
	return b.String(), nil
}

// link resolves the image reference from the output's point of view.
func (c *ImageConverter) link(path, fallback string) string {
	if path == "" {
		return fallback
	}
	if fetch.IsURL(path) {
		return path
	}
	if c.OutputDir == "" {
		// Sibling output: the image sits in the same directory.
		return filepath.Base(path)
	}
	if rel, err := filepath.Rel(c.OutputDir, path); err == nil {
		return filepath.ToSlash(rel)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return filepath.ToSlash(abs)
	}
	return fallback
}
