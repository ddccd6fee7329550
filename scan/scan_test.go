package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names []string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"a.txt",
		"sub/b.csv",
		"sub/deep/c.docx",
		"unsupported.bin",
		"generated.md",
		".hidden.txt",
		".git/config.txt",
	})

	got, err := Discover(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.csv"),
		filepath.Join(root, "sub", "deep", "c.docx"),
	}, got)
}

func TestDiscoverEmptyDir(t *testing.T) {
	got, err := Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
