package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/outline"
)

var tocFormat string

var tocCmd = &cobra.Command{
	Use:   "toc FILE",
	Short: "Print the table of contents of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headings, err := extractFile(args[0])
		if err != nil {
			return err
		}
		forest := outline.Build(headings)

		switch tocFormat {
		case "markdown", "md":
			return outline.Markdown(cmd.OutOrStdout(), forest)
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(forest)
		default:
			return fmt.Errorf("unknown format %q (want markdown or json)", tocFormat)
		}
	},
}

func init() {
	tocCmd.Flags().StringVarP(&tocFormat, "format", "f", "markdown", "output format: markdown or json")
}
