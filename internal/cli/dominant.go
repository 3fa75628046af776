package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type dominantOptions struct {
	clusterFlags

	format  string
	preview bool
}

func newDominantCmd() *cobra.Command {
	opts := &dominantOptions{}

	cmd := &cobra.Command{
		Use:   "dominant <image>",
		Short: "Print the dominant colour of an image",
		Long: `Print the single most prominent colour of an image: the centre of the
largest pixel cluster.

Examples:
  palettex dominant wallpaper.jpg
  palettex dominant -f rgb https://example.com/photo.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDominant(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a colour preview in terminal")
	opts.clusterFlags.register(cmd)

	return cmd
}

func runDominant(cmd *cobra.Command, path string, opts *dominantOptions) error {
	if opts.format != "hex" && opts.format != "rgb" {
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb)", opts.format)
	}

	logger := newLogger(cmd)

	buf, err := opts.loadPixels(cmd, logger, path)
	if err != nil {
		return err
	}
	ex, err := opts.newExtractor(cmd, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seedOpt, err := opts.seedOption(logger, buf.Pix)
	if err != nil {
		return fmt.Errorf("invalid seed configuration: %w", err)
	}

	c, err := ex.ExtractDominantColor(buf.Pix, seedOpt)
	if err != nil {
		return fmt.Errorf("failed to extract dominant colour: %w", err)
	}

	text := c.Hex()
	if opts.format == "rgb" {
		text = c.RGBString()
	}
	if previewEnabled(opts.preview, cmd.OutOrStdout()) {
		text = colourPreview(c, previewWidth) + " " + text
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
