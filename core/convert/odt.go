package convert

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/knakagawa/docmd/core"
)

// ODTConverter extracts an OpenDocument text file (zip container,
// content.xml) into Markdown. text:h elements become headings at their
// outline level, text:p elements become paragraphs, and table:table
// elements become pipe tables.
type ODTConverter struct{}

// NewODTConverter creates an ODTConverter.
func NewODTConverter() *ODTConverter {
	return &ODTConverter{}
}

// Convert reads content.xml from the container and walks the body.
func (c *ODTConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	contentXML, err := readZipEntry(src.Data, "content.xml")
	if err != nil {
		return "", fmt.Errorf("%s: %w", src.Path, err)
	}

	blocks, err := walkODTContent(contentXML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", src.Path, err)
	}

	var b strings.Builder
	writeTitleHeading(&b, src.Path)
	writeBlocks(&b, blocks)
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// walkODTContent streams through content.xml. Headings and paragraphs are
// flattened to their text; tables are handled structurally. Paragraphs
// inside table cells are consumed by the table walker.
func walkODTContent(contentXML []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(contentXML))
	var blocks []string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "h":
			level := odtOutlineLevel(se)
			text, err := elementText(dec, se)
			if err != nil {
				return nil, err
			}
			if text = cleanCell(text); text != "" {
				blocks = append(blocks, strings.Repeat("#", level)+" "+text)
			}
		case "p":
			text, err := elementText(dec, se)
			if err != nil {
				return nil, err
			}
			if text = cleanCell(text); text != "" {
				blocks = append(blocks, text)
			}
		case "table":
			rows, err := walkODTTable(dec)
			if err != nil {
				return nil, err
			}
			if md := pipeTable(rows); md != "" {
				blocks = append(blocks, md)
			}
		}
	}
	return blocks, nil
}

// odtOutlineLevel reads the text:outline-level attribute, clamped to 1..6.
func odtOutlineLevel(se xml.StartElement) int {
	for _, attr := range se.Attr {
		if attr.Name.Local != "outline-level" {
			continue
		}
		if level, err := strconv.Atoi(attr.Value); err == nil {
			if level < 1 {
				return 1
			}
			if level > 6 {
				return 6
			}
			return level
		}
	}
	return 1
}

// walkODTTable consumes tokens until the table's end element, collecting
// row and cell text.
func walkODTTable(dec *xml.Decoder) ([][]string, error) {
	var rows [][]string
	var current []string
	depth := 1

	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "table-row":
				current = nil
				depth++
			case "table-cell":
				text, err := elementText(dec, t)
				if err != nil {
					return nil, err
				}
				current = append(current, cleanCell(text))
			default:
				depth++
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "table-row" {
				rows = append(rows, current)
			}
		}
	}
	return rows, nil
}

// elementText consumes an element (spans and all) and returns its
// concatenated character data. ODT encodes tabs and runs of spaces as
// child elements; both collapse to a single space here.
func elementText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tab" || t.Name.Local == "s" {
				b.WriteString(" ")
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(t)
		}
	}
	return b.String(), nil
}
