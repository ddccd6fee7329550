package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knakagawa/docmd/core"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Sample</title><script>alert("noise")</script></head>
<body>
  <nav><a href="/">Home</a></nav>
  <main>
    <h1>Getting Started</h1>
    <p>Install the tool and run <strong>convert</strong>.</p>
    <ul><li>first</li><li>second</li></ul>
  </main>
  <footer>Copyright</footer>
</body>
</html>`

func TestHTMLConverter(t *testing.T) {
	c := NewHTMLConverter()

	got, err := c.Convert(context.Background(), core.Source{Path: "page.html", Data: []byte(samplePage)})
	require.NoError(t, err)

	assert.Contains(t, got, "# Getting Started")
	assert.Contains(t, got, "**convert**")
	assert.Contains(t, got, "first")
}

func TestHTMLConverterStripsNoise(t *testing.T) {
	c := NewHTMLConverter()

	got, err := c.Convert(context.Background(), core.Source{Path: "page.html", Data: []byte(samplePage)})
	require.NoError(t, err)

	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "Copyright")
	assert.NotContains(t, got, "Home")
}

func TestHTMLConverterBodyFallback(t *testing.T) {
	c := NewHTMLConverter()

	got, err := c.Convert(context.Background(), core.Source{
		Path: "fragment.html",
		Data: []byte("<html><body><h2>Notes</h2><p>plain body page</p></body></html>"),
	})
	require.NoError(t, err)
	assert.Contains(t, got, "## Notes")
	assert.Contains(t, got, "plain body page")
}
