package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/palettex/internal/image"
	"github.com/jmylchreest/palettex/internal/seed"
	httputil "github.com/jmylchreest/palettex/internal/util/http"
	"github.com/jmylchreest/palettex/internal/util/imagecache"
	"github.com/jmylchreest/palettex/pkg/palette"
)

// clusterFlags are the clustering settings shared by extract and dominant.
type clusterFlags struct {
	maxIterations int
	convergence   float64
	seedMode      string
	seedValue     int64
	maxDimension  int
	cache         bool
	cacheDir      string
}

func (f *clusterFlags) register(cmd *cobra.Command) {
	defaults := palette.DefaultExtractorConfig()
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", defaults.MaxIterations, "maximum k-means iterations (>= 1)")
	cmd.Flags().Float64Var(&f.convergence, "convergence", defaults.ConvergenceThreshold, "stop when no centroid moves further than this (>= 0)")
	cmd.Flags().StringVar(&f.seedMode, "seed-mode", string(seed.ModeContent), "k-means seed mode: content, manual, random")
	cmd.Flags().Int64Var(&f.seedValue, "seed", 0, "k-means seed value (only used with --seed-mode=manual)")
	cmd.Flags().IntVar(&f.maxDimension, "max-dimension", 256, "downscale images whose longer side exceeds this (0 disables)")
	cmd.Flags().BoolVar(&f.cache, "cache", false, "cache images downloaded from URLs")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "directory for cached images (default: user cache dir)")
}

// loadPixels resolves path (file, directory or URL), decodes it and
// flattens it to RGBA.
func (f *clusterFlags) loadPixels(cmd *cobra.Command, logger hclog.Logger, path string) (image.PixelBuffer, error) {
	maxDimension := f.maxDimension
	if maxDimension < 0 {
		return image.PixelBuffer{}, fmt.Errorf("max dimension must not be negative, got %d", maxDimension)
	}
	if err := image.ValidateImagePath(path); err != nil {
		return image.PixelBuffer{}, fmt.Errorf("invalid image path: %w", err)
	}

	resolved, err := image.ResolveImagePath(path)
	if err != nil {
		return image.PixelBuffer{}, fmt.Errorf("failed to resolve image path: %w", err)
	}

	if f.cache && image.IsURL(resolved) {
		cached, err := imagecache.DownloadAndCache(cmd.Context(), resolved, imagecache.CacheOptions{CacheDir: f.cacheDir})
		if err != nil {
			return image.PixelBuffer{}, err
		}
		logger.Debug("using cached image", "url", resolved, "path", cached)
		resolved = cached
	}
	logger.Debug("loading image", "path", resolved)

	img, err := image.NewSmartLoader(cmd.Context(), httputil.FetchOptions{}).Load(resolved)
	if err != nil {
		return image.PixelBuffer{}, fmt.Errorf("failed to load image: %w", err)
	}

	buf := image.ToPixels(img, maxDimension)
	logger.Debug("image loaded",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"sampled_width", buf.Width, "sampled_height", buf.Height)
	return buf, nil
}

// newExtractor applies the flags to a fresh extractor.
func (f *clusterFlags) newExtractor(cmd *cobra.Command, logger hclog.Logger) (*palette.Extractor, error) {
	ex := palette.New(palette.WithLogger(logger.Named("kmeans")))
	if err := ex.SetMaxIterations(f.maxIterations); err != nil {
		return nil, err
	}
	if err := ex.SetConvergence(f.convergence); err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	ex.SetVerbose(verbose)
	return ex, nil
}

// seedOption derives the per-call seed for pixels.
func (f *clusterFlags) seedOption(logger hclog.Logger, pixels []byte) (palette.ExtractOption, error) {
	mode, err := seed.ParseMode(f.seedMode)
	if err != nil {
		return nil, err
	}
	s, err := seed.Calculate(pixels, seed.Config{Mode: mode, Value: &f.seedValue})
	if err != nil {
		return nil, err
	}
	logger.Debug("seed selected", "mode", mode, "seed", s)
	return palette.WithSeed(s), nil
}
