package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/scrollspy"
)

var (
	scrollTop float64
	threshold float64
	tops      string
)

var activeCmd = &cobra.Command{
	Use:   "active FILE",
	Short: "Show which heading is active at a scroll position",
	Long: `Given the rendered top offset of each heading (in document order),
print the heading a scroll-spy would highlight and its ancestors.

Example:
  docoutline active guide.md --tops 0,300,600 --scroll 350`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headings, err := extractFile(args[0])
		if err != nil {
			return err
		}
		offsets, err := parseTops(tops)
		if err != nil {
			return err
		}
		if len(offsets) != len(headings) {
			return fmt.Errorf("got %d offsets for %d headings", len(offsets), len(headings))
		}

		anchors := make([]scrollspy.Anchor, len(offsets))
		for i, top := range offsets {
			anchors[i] = scrollspy.Anchor{ID: outline.AnchorID(i), Top: top}
		}

		tracker := scrollspy.NewTracker(scrollspy.WithThreshold(threshold))
		tracker.SetAnchors(anchors)
		active := tracker.OnScroll(scrollTop)
		if active == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no active heading")
			return nil
		}

		forest := outline.Build(headings)
		var titles []string
		for _, n := range outline.Path(forest, active) {
			titles = append(titles, n.Title)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", active, strings.Join(titles, " > "))
		return nil
	},
}

func init() {
	activeCmd.Flags().Float64Var(&scrollTop, "scroll", 0, "scroll offset of the container")
	activeCmd.Flags().Float64Var(&threshold, "threshold", scrollspy.DefaultThreshold, "fixed header offset")
	activeCmd.Flags().StringVar(&tops, "tops", "", "comma-separated heading top offsets")
}

func parseTops(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", part, err)
		}
		out = append(out, f)
	}
	return out, nil
}
