package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/docoutline/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser extracts headings from the PDF bookmark outline. PDFs without
// bookmarks have no headings.
type PDFParser struct{}

func (p *PDFParser) Extract(r io.Reader, filename string) ([]outline.Heading, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	// The outline root has no title; its children are the top-level entries.
	var headings []outline.Heading
	for _, entry := range reader.Outline().Child {
		headings = flattenOutline(entry, 1, headings)
	}
	return headings, nil
}

// flattenOutline appends bookmarks in pre-order. Depth beyond 6 is clamped.
func flattenOutline(o pdflib.Outline, depth int, out []outline.Heading) []outline.Heading {
	if o.Title != "" {
		out = append(out, outline.Heading{Level: clampLevel(depth), Title: o.Title})
	}
	for _, c := range o.Child {
		out = flattenOutline(c, depth+1, out)
	}
	return out
}
