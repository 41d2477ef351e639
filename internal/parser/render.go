package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgallion1/docoutline/internal/outline"
	xhtml "golang.org/x/net/html"
)

// AnnotateHTML sets id="heading-<n>" on every heading element of an HTML
// document, writes the document to w and returns the headings in the same
// order, so outline anchors resolve to real scroll targets.
func AnnotateHTML(r io.Reader, w io.Writer, marker string) ([]outline.Heading, error) {
	doc, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}
	headings := annotate(root, markerFilter(marker), nil)

	if err := xhtml.Render(w, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return headings, nil
}

// RenderMarkdown renders Markdown to an HTML fragment with heading anchors.
// Headings from Markdown syntax always get an anchor; raw HTML headings
// follow opts.MarkerClass and only appear when opts.RawHTML is set.
func RenderMarkdown(src []byte, opts Options) (string, []outline.Heading, error) {
	var rendered bytes.Buffer
	if err := newMarkdown(opts.RawHTML).Convert(src, &rendered); err != nil {
		return "", nil, fmt.Errorf("render markdown: %w", err)
	}

	nodes, err := xhtml.ParseFragment(&rendered, bodyContext())
	if err != nil {
		return "", nil, fmt.Errorf("parse rendered html: %w", err)
	}

	rawOK := markerFilter(opts.MarkerClass)
	accept := func(n *xhtml.Node) bool {
		return attr(n, sourceAttr) != "" || rawOK(n)
	}

	headings := []outline.Heading{}
	var out bytes.Buffer
	for _, n := range nodes {
		headings = annotate(n, accept, headings)
		if err := xhtml.Render(&out, n); err != nil {
			return "", nil, fmt.Errorf("render html: %w", err)
		}
	}
	return out.String(), headings, nil
}

// annotate numbers accepted headings under n continuing from len(headings).
func annotate(n *xhtml.Node, accept func(*xhtml.Node) bool, headings []outline.Heading) []outline.Heading {
	visitHeadings(n, accept, func(el *xhtml.Node, h outline.Heading) {
		removeAttr(el, sourceAttr)
		setAttr(el, "id", outline.AnchorID(len(headings)))
		headings = append(headings, h)
	})
	return headings
}
