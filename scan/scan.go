// Package scan discovers convertible files for --recursive mode,
// keeping traversal logic separate from the conversion pipeline.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knakagawa/docmd/core/detect"
)

// markdownExts are skipped during discovery: converting Markdown to
// Markdown in place would overwrite previously generated outputs.
var markdownExts = map[string]bool{".md": true, ".markdown": true}

// Discover walks root and returns every file with a supported extension,
// in sorted order. Hidden files and directories are skipped.
func Discover(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !detect.Supported(path) {
			return nil
		}
		if markdownExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
