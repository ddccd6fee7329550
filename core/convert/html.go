package convert

import (
	"context"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/knakagawa/docmd/core"
)

// noiseSelectors are HTML elements removed before conversion.
// These contribute no meaningful content to the document text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLConverter strips page chrome from HTML and converts the main
// content to Markdown.
type HTMLConverter struct{}

// NewHTMLConverter creates an HTMLConverter.
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{}
}

// Convert extracts the main content container and converts it to Markdown.
func (c *HTMLConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	content, err := extractContent(string(src.Data))
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

// extractContent removes noise elements and returns the best content
// container: <main> is the most semantically correct, then <article>,
// then <body>.
func extractContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
