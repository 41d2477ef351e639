package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/parser"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print a Markdown or HTML document as HTML with heading anchors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		out := cmd.OutOrStdout()
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			src, err := io.ReadAll(f)
			if err != nil {
				return err
			}
			rendered, _, err := parser.RenderMarkdown(src, cliOptions())
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, rendered)
			return err
		case ".html", ".htm":
			_, err := parser.AnnotateHTML(f, out, markerClass)
			return err
		default:
			return fmt.Errorf("render supports markdown and html only: %s", path)
		}
	},
}
