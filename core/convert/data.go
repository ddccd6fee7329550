package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/knakagawa/docmd/core"
)

// JSONConverter validates and pretty-prints JSON inside a fenced block.
type JSONConverter struct{}

// NewJSONConverter creates a JSONConverter.
func NewJSONConverter() *JSONConverter {
	return &JSONConverter{}
}

// Convert re-indents the document and emits it as a ```json block.
func (c *JSONConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(src.Data), "", "  "); err != nil {
		return "", fmt.Errorf("parsing JSON: %w", err)
	}
	return fencedBlock("json", buf.String()), nil
}

// YAMLConverter validates YAML and emits it inside a fenced block.
type YAMLConverter struct{}

// NewYAMLConverter creates a YAMLConverter.
func NewYAMLConverter() *YAMLConverter {
	return &YAMLConverter{}
}

// Convert checks that the document parses, then emits the original text
// as a ```yaml block. The source formatting is kept because YAML
// round-tripping loses comments and anchors.
func (c *YAMLConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	var doc any
	if err := yaml.Unmarshal(src.Data, &doc); err != nil {
		return "", fmt.Errorf("parsing YAML: %w", err)
	}
	return fencedBlock("yaml", strings.TrimRight(string(src.Data), "\n")), nil
}

func fencedBlock(lang, content string) string {
	fence := fenceFor(content)
	return fence + lang + "\n" + content + "\n" + fence + "\n"
}
