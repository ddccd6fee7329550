package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/knakagawa/docmd/core"
)

// DOCXConverter extracts a .docx (OOXML zip container, word/document.xml)
// into Markdown. Heading styles become #-headings, numbered paragraphs
// become list items, bold/italic runs keep their emphasis, and tables
// become pipe tables.
type DOCXConverter struct{}

// NewDOCXConverter creates a DOCXConverter.
func NewDOCXConverter() *DOCXConverter {
	return &DOCXConverter{}
}

// Convert reads word/document.xml from the container and walks the body.
func (c *DOCXConverter) Convert(ctx context.Context, src core.Source) (string, error) {
	docXML, err := readZipEntry(src.Data, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("%s: %w", src.Path, err)
	}

	blocks, err := walkDocxBody(docXML)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", src.Path, err)
	}

	var b strings.Builder
	writeTitleHeading(&b, src.Path)
	writeBlocks(&b, blocks)
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// writeBlocks joins Markdown blocks with blank lines.
func writeBlocks(b *strings.Builder, blocks []string) {
	for _, block := range blocks {
		b.WriteString(strings.TrimRight(block, "\n"))
		b.WriteString("\n\n")
	}
}

// readZipEntry returns the content of one file inside a zip container.
func readZipEntry(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening container: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("container has no %s", name)
}

// writeTitleHeading prepends "# <filename>" when the source has a path.
func writeTitleHeading(b *strings.Builder, path string) {
	if name := fileTitle(path); name != "" {
		fmt.Fprintf(b, "# %s\n\n", name)
	}
}

// docxParagraph mirrors the subset of w:p needed for Markdown output.
// Field tags use local names only, so the w: namespace prefix is ignored.
type docxParagraph struct {
	Props docxParaProps `xml:"pPr"`
	Runs  []docxRun     `xml:"r"`
}

type docxParaProps struct {
	Style struct {
		Val string `xml:"val,attr"`
	} `xml:"pStyle"`
	NumPr *struct{} `xml:"numPr"`
}

type docxRun struct {
	Props *docxRunProps `xml:"rPr"`
	Text  []string      `xml:"t"`
}

type docxRunProps struct {
	Bold   *struct{} `xml:"b"`
	Italic *struct{} `xml:"i"`
}

type docxTable struct {
	Rows []struct {
		Cells []struct {
			Paragraphs []docxParagraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

// walkDocxBody streams through the document body, decoding paragraphs and
// tables in order. DecodeElement consumes nested elements, so paragraphs
// inside table cells are not seen twice.
func walkDocxBody(docXML []byte) ([]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))
	var blocks []string
	inBody := false

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
		case "body":
			inBody = true
		case "p":
			if !inBody {
				continue
			}
			var p docxParagraph
			if err := dec.DecodeElement(&p, &se); err != nil {
				return nil, err
			}
			if md := renderDocxParagraph(p); md != "" {
				blocks = append(blocks, md)
			}
		case "tbl":
			if !inBody {
				continue
			}
			var t docxTable
			if err := dec.DecodeElement(&t, &se); err != nil {
				return nil, err
			}
			if md := renderDocxTable(t); md != "" {
				blocks = append(blocks, md)
			}
		}
	}
	return blocks, nil
}

// renderDocxParagraph converts one paragraph to a Markdown block.
func renderDocxParagraph(p docxParagraph) string {
	text := renderDocxRuns(p.Runs)
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if level := headingLevel(p.Props.Style.Val); level > 0 {
		return strings.Repeat("#", level) + " " + cleanCell(text)
	}
	if p.Props.NumPr != nil || strings.Contains(p.Props.Style.Val, "List") {
		return "- " + text
	}
	return text
}

// renderDocxRuns concatenates run text, wrapping bold and italic runs.
func renderDocxRuns(runs []docxRun) string {
	var b strings.Builder
	for _, r := range runs {
		text := strings.Join(r.Text, "")
		if text == "" {
			continue
		}
		switch {
		case r.Props != nil && r.Props.Bold != nil && r.Props.Italic != nil:
			b.WriteString("***" + text + "***")
		case r.Props != nil && r.Props.Bold != nil:
			b.WriteString("**" + text + "**")
		case r.Props != nil && r.Props.Italic != nil:
			b.WriteString("*" + text + "*")
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// headingLevel maps OOXML paragraph styles to heading levels.
// "Title" counts as level 1; "Heading1".."Heading9" clamp to 6.
func headingLevel(style string) int {
	if style == "Title" {
		return 1
	}
	if !strings.HasPrefix(style, "Heading") {
		return 0
	}
	rest := strings.TrimPrefix(style, "Heading")
	if len(rest) != 1 || rest[0] < '1' || rest[0] > '9' {
		return 0
	}
	level := int(rest[0] - '0')
	if level > 6 {
		level = 6
	}
	return level
}

// renderDocxTable flattens cell paragraphs and renders a pipe table.
func renderDocxTable(t docxTable) string {
	var rows [][]string
	for _, tr := range t.Rows {
		var row []string
		for _, tc := range tr.Cells {
			var parts []string
			for _, p := range tc.Paragraphs {
				if text := renderDocxRuns(p.Runs); text != "" {
					parts = append(parts, text)
				}
			}
			row = append(row, cleanCell(strings.Join(parts, " ")))
		}
		rows = append(rows, row)
	}
	return pipeTable(rows)
}
