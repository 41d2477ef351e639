package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

var (
	markerClass string
	rawHTML     bool
)

var rootCmd = &cobra.Command{
	Use:   "docoutline",
	Short: "Build tables of contents from document headings",
	Long: `docoutline extracts the headings of Markdown, HTML, DOCX and PDF documents
and arranges them into a nested table of contents with stable anchors
(heading-0, heading-1, ...) in document order.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&markerClass, "marker-class", "", "only count HTML headings carrying this class",
	)
	rootCmd.PersistentFlags().BoolVar(
		&rawHTML, "raw-html", false, "pass raw HTML in Markdown through, including its headings",
	)

	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(activeCmd)
}

func cliOptions() parser.Options {
	return parser.Options{MarkerClass: markerClass, RawHTML: rawHTML}
}

// extractFile reads the headings of a file on disk.
func extractFile(path string) ([]outline.Heading, error) {
	ext, err := parser.ForFile(path, cliOptions())
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headings, err := ext.Extract(f, path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	return headings, nil
}
