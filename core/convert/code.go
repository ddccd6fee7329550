package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/knakagawa/docmd/core"
)

// fenceLanguages maps source file extensions to fenced-code-block
// language tags.
var fenceLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".c":    "c",
	".cpp":  "cpp",
	".h":    "c",
	".rs":   "rust",
	".rb":   "ruby",
	".sh":   "bash",
	".sql":  "sql",
	".css":  "css",
	".xml":  "xml",
	".toml": "toml",
	".ini":  "ini",
}

// CodeConverter wraps source files in a fenced code block tagged with the
// language inferred from the extension.
type CodeConverter struct{}

// NewCodeConverter creates a CodeConverter.
func NewCodeConverter() *CodeConverter {
	return &CodeConverter{}
}

// Convert emits the file content inside a fenced block. The fence grows
// if the content itself contains triple backticks.
func (c *CodeConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	if !utf8.Valid(src.Data) {
		return "", fmt.Errorf("%s: not valid UTF-8 source", src.Path)
	}

	lang := fenceLanguages[strings.ToLower(filepath.Ext(src.Path))]
	content := strings.TrimRight(string(src.Data), "\n")
	return fencedBlock(lang, content), nil
}

// fenceFor returns a backtick fence one longer than the longest backtick
// run in the content, with a minimum of three.
func fenceFor(content string) string {
	longest := 0
	run := 0
	for _, ch := range content {
		if ch == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		longest = 2
	}
	return strings.Repeat("`", longest+1)
}
