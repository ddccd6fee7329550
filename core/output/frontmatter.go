package output

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter describes the provenance of a converted document.
type Frontmatter struct {
	Source      string `yaml:"source"`
	Format      string `yaml:"format"`
	ConvertedAt string `yaml:"converted_at"`
}

// NewFrontmatter builds the frontmatter for a conversion, stamped with
// the current UTC time.
func NewFrontmatter(source, format string) Frontmatter {
	return Frontmatter{
		Source:      source,
		Format:      format,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Prepend returns the Markdown body with a YAML frontmatter block on top.
func (fm Frontmatter) Prepend(markdown string) (string, error) {
	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString(markdown)
	return b.String(), nil
}
