package parser

import (
	"io"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// MarkdownParser extracts headings from Markdown files using goldmark.
// Headings are read back from the rendered page, so the outline always
// lines up with the anchors RenderMarkdown writes.
type MarkdownParser struct {
	// MarkerClass applies to headings written as raw HTML.
	MarkerClass string
	RawHTML     bool
}

func (p *MarkdownParser) Extract(r io.Reader, filename string) ([]outline.Heading, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	_, headings, err := RenderMarkdown(src, Options{MarkerClass: p.MarkerClass, RawHTML: p.RawHTML})
	if err != nil {
		return nil, err
	}
	return headings, nil
}

// sourceAttr tags headings goldmark renders from Markdown syntax. It is
// stripped again when the page is annotated.
const sourceAttr = "data-outline-source"

type headingSource struct{}

func (headingSource) Transform(doc *ast.Document, reader text.Reader, pc gmparser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			h.SetAttributeString(sourceAttr, []byte("markdown"))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

func newMarkdown(rawHTML bool) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			gmparser.WithASTTransformers(util.Prioritized(headingSource{}, 100)),
		),
	}
	if rawHTML {
		opts = append(opts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return goldmark.New(opts...)
}
