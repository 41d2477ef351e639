package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
)

// Extractor scans a document and returns its headings in document order.
// A document without headings yields an empty list, not an error.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]outline.Heading, error)
}

// Options tune extraction and rendering.
type Options struct {
	// MarkerClass, when set, restricts HTML headings to elements carrying
	// this class. Headings written in Markdown syntax always count.
	MarkerClass string

	// RawHTML passes raw HTML in Markdown through to the rendered page.
	// Headings inside raw HTML are only part of the outline when it does.
	RawHTML bool
}

// Key identifies the extractor and settings used for a file, so outlines of
// the same bytes read different ways are kept apart.
func (o Options) Key(filename string) string {
	return fmt.Sprintf("%s|%s|%t", strings.ToLower(filepath.Ext(filename)), o.MarkerClass, o.RawHTML)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string, opts Options) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownParser{MarkerClass: opts.MarkerClass, RawHTML: opts.RawHTML}, nil
	case ".html", ".htm":
		return &HTMLParser{MarkerClass: opts.MarkerClass}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// clampLevel keeps levels from formats without a hard limit in 1..6.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
