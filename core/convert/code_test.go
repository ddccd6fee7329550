package convert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/docmd/core"
)

func TestCodeConverter(t *testing.T) {
	tests := []struct {
		name string
		path string
		in   string
		want string
	}{
		{
			name: "go source",
			path: "main.go",
			in:   "package main\n",
			want: "```go\npackage main\n```\n",
		},
		{
			name: "python source",
			path: "script.py",
			in:   "print('hi')",
			want: "```python\nprint('hi')\n```\n",
		},
		{
			name: "unknown extension has no language tag",
			path: "notes.cfg2",
			in:   "key=value",
			want: "```\nkey=value\n```\n",
		},
	}

	c := NewCodeConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(context.Background(), core.Source{Path: tt.path, Data: []byte(tt.in)})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeConverterGrowsFence(t *testing.T) {
	c := NewCodeConverter()

	in := "example:\n```go\ncode\n```\n"
	got, err := c.Convert(context.Background(), core.Source{Path: "snippet.sh", Data: []byte(in)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "````bash\n"), "fence must be longer than the embedded one, got %q", got)
}

func TestCodeConverterRejectsBinary(t *testing.T) {
	c := NewCodeConverter()

	_, err := c.Convert(context.Background(), core.Source{Path: "a.go", Data: []byte{0xff, 0x00}})
	assert.Error(t, err)
}
