package parser

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser extracts headings from HTML documents.
type HTMLParser struct {
	MarkerClass string
}

func (p *HTMLParser) Extract(r io.Reader, filename string) ([]outline.Heading, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	var headings []outline.Heading
	visitHeadings(root, markerFilter(p.MarkerClass), func(n *html.Node, h outline.Heading) {
		headings = append(headings, h)
	})
	return headings, nil
}

func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}

// visitHeadings calls fn for each accepted heading element under n in
// document order. Headings inside <details> and other containers are included.
func visitHeadings(n *html.Node, accept func(*html.Node) bool, fn func(*html.Node, outline.Heading)) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template, atom.Noscript:
			return
		}

		if level := headingLevel(n); level > 0 && accept(n) {
			fn(n, outline.Heading{Level: level, Title: textContent(n)})
			return // Headings don't nest.
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visitHeadings(c, accept, fn)
	}
}

// headingLevel returns 1..6 for heading elements and 0 otherwise.
// ARIA headings default to level 2.
func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	if attr(n, "role") == "heading" {
		if lvl, err := strconv.Atoi(attr(n, "aria-level")); err == nil {
			return clampLevel(lvl)
		}
		return 2
	}
	return 0
}

// markerFilter accepts headings carrying the marker class, or every heading
// when marker is empty.
func markerFilter(marker string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return marker == "" || slices.Contains(strings.Fields(attr(n, "class")), marker)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool { return a.Key == key })
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
