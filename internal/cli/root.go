// Package cli provides the command-line interface for palettex.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettex/internal/version"
)

// NewRootCmd builds the palettex command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palettex",
		Short: "Extract colour palettes from images with k-means",
		Long: `palettex extracts a representative colour palette from an image by
clustering its pixels in RGB space (k-means with k-means++ seeding).

Flags can also be set through the environment: every flag maps to
PALETTEX_<FLAG>, upper-cased with dashes turned into underscores
(for example PALETTEX_MAX_ITERATIONS). Explicit flags take precedence.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyEnvDefaults(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newExtractCmd(),
		newDominantCmd(),
		newDistanceCmd(),
		newSortCmd(),
		newDedupeCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
