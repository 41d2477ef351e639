package outline

import (
	"fmt"
	"io"
	"strings"
)

// NoHeadings is written in place of an empty table of contents.
const NoHeadings = "_No headings_"

// Markdown writes the forest as a nested Markdown list of anchor links.
func Markdown(w io.Writer, forest []*Node) error {
	if len(forest) == 0 {
		_, err := fmt.Fprintln(w, NoHeadings)
		return err
	}

	var err error
	Walk(forest, func(n *Node, depth int) bool {
		_, err = fmt.Fprintf(w, "%s- [%s](#%s)\n", strings.Repeat("  ", depth), escapeLinkText(n.Title), n.AnchorID)
		return err == nil
	})
	return err
}

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}
