// Package convert provides the built-in converters, one per format family.
// Each converter wraps one parsing concern and emits Markdown text.
package convert

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/knakagawa/docmd/core"
)

// TextConverter passes plain text (and Markdown) through unchanged.
type TextConverter struct{}

// NewTextConverter creates a TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the input as-is. Invalid UTF-8 is rejected rather than
// silently emitting mojibake.
func (c *TextConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	if !utf8.Valid(src.Data) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", src.Path)
	}
	return string(src.Data), nil
}
