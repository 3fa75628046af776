package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettex/pkg/palette"
)

// parseColours parses hex colour arguments.
func parseColours(args []string) ([]palette.Color, error) {
	colours := make([]palette.Color, len(args))
	for i, arg := range args {
		c, err := palette.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		colours[i] = c
	}
	return colours, nil
}

// printColours writes one hex colour per line.
func printColours(cmd *cobra.Command, colours []palette.Color) {
	var b strings.Builder
	for _, c := range colours {
		b.WriteString(c.Hex() + "\n")
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <colour> <colour>",
		Short: "Print the RGB distance between two colours",
		Long: `Print the Euclidean distance between two hex colours in RGB space.

Example:
  palettex distance '#ff0000' '#0000ff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", palette.Distance(colours[0], colours[1]))
			return nil
		},
	}
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <colour>...",
		Short: "Sort colours from dark to light",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			printColours(cmd, palette.SortByLuminance(colours))
			return nil
		},
	}
}

func newDedupeCmd() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "dedupe <colour>...",
		Short: "Remove colours similar to an earlier one",
		Long: `Remove every colour within --threshold RGB distance of a colour kept
before it. Input order matters: the first occurrence wins.

Example:
  palettex dedupe --threshold 20 '#ff0000' '#fa0000' '#0000ff'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < 0 {
				return fmt.Errorf("threshold must not be negative, got %v", threshold)
			}
			colours, err := parseColours(args)
			if err != nil {
				return err
			}
			printColours(cmd, palette.RemoveSimilar(colours, threshold))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 10, "RGB distance at or below which colours are considered similar")
	return cmd
}
