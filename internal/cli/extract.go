package cli

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettex/pkg/palette"
)

type extractOptions struct {
	clusterFlags

	colours int
	format  string
	output  string
	preview bool
	dedupe  float64
	sortBy  string
}

func newExtractCmd() *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a colour palette from an image using k-means clustering.

The image may be a local file, a directory (a random image inside it is
used) or an HTTP(S) URL. Colours are listed from most to least prominent,
each with the share of pixels assigned to it.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 8 colours (default)
  palettex extract wallpaper.jpg

  # Extract 5 colours as JSON
  palettex extract -c 5 -f json wallpaper.png

  # Drop near-duplicates and order dark to light
  palettex extract --dedupe 30 --sort luminance wallpaper.jpg

  # Reproducible output with a fixed seed
  palettex extract --seed-mode manual --seed 42 wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 8, "number of colours to extract")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "hex", "output format (hex, rgb, json, table)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")
	cmd.Flags().Float64Var(&opts.dedupe, "dedupe", -1, "drop colours within this RGB distance of a more prominent one (negative disables)")
	cmd.Flags().StringVar(&opts.sortBy, "sort", "prominence", "ordering (prominence, luminance)")
	opts.clusterFlags.register(cmd)

	return cmd
}

func runExtract(cmd *cobra.Command, path string, opts *extractOptions) error {
	if !slices.Contains([]string{"hex", "rgb", "json", "table"}, opts.format) {
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, table)", opts.format)
	}
	if opts.sortBy != "prominence" && opts.sortBy != "luminance" {
		return fmt.Errorf("invalid sort order: %s (valid: prominence, luminance)", opts.sortBy)
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

	logger.Debug("extracting colours", "colours", opts.colours)
	p, err := ex.ExtractPaletteFromImageData(buf.Pix, buf.Width, buf.Height, opts.colours, seedOpt)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extracted colours", "count", p.Len())

	if opts.dedupe >= 0 {
		p = dedupePalette(p, opts.dedupe)
		logger.Debug("removed similar colours", "threshold", opts.dedupe, "remaining", p.Len())
	}
	if opts.sortBy == "luminance" {
		slices.SortStableFunc(p.Swatches, func(a, b palette.Swatch) int {
			return cmp.Compare(a.Color.Luminance(), b.Color.Luminance())
		})
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		out = nil
	}
	output, err := formatPalette(p, opts.format, previewEnabled(opts.preview, out))
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(output), 0o644); err != nil { // #nosec G306 -- palette output is not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote palette", "path", opts.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// dedupePalette keeps the swatches that survive palette.RemoveSimilar,
// preserving their percentages.
func dedupePalette(p *palette.Palette, threshold float64) *palette.Palette {
	kept := palette.RemoveSimilar(p.Colors(), threshold)

	swatches := make([]palette.Swatch, 0, len(kept))
	for _, s := range p.Swatches {
		if len(swatches) < len(kept) && s.Color == kept[len(swatches)] {
			swatches = append(swatches, s)
		}
	}
	return &palette.Palette{Swatches: swatches}
}

// formatPalette renders the palette in the requested format.
func formatPalette(p *palette.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex", "rgb":
		var b strings.Builder
		for _, s := range p.Swatches {
			text := s.Color.Hex()
			if format == "rgb" {
				text = s.Color.RGBString()
			}
			if showPreview {
				b.WriteString(colourPreview(s.Color, previewWidth) + " ")
			}
			b.WriteString(text + "\n")
		}
		return b.String(), nil
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "table":
		headers := []string{"#", "HEX", "RGB", "SHARE"}
		if showPreview {
			headers = append(headers, "SWATCH")
		}
		table := NewTable(headers)
		for i, s := range p.Swatches {
			row := []string{
				strconv.Itoa(i + 1),
				s.Color.Hex(),
				s.Color.RGBString(),
				fmt.Sprintf("%.2f%%", s.Percentage),
			}
			if showPreview {
				row = append(row, colourPreview(s.Color, previewWidth))
			}
			table.AddRow(row)
		}
		return table.Render(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, table)", format)
	}
}
