// Package palette is the public entry point for palette extraction.
//
// An Extractor owns its configuration and is not safe for concurrent
// mutation; separate Extractors share nothing and may be used in parallel.
//
//	ex := palette.New()
//	p, err := ex.ExtractPaletteFromPixels(rgba, 5)
//	if err != nil {
//		return err
//	}
//	for _, s := range p.Swatches {
//		fmt.Println(s.Color.Hex(), s.Percentage)
//	}
package palette

import (
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettex/internal/colour"
	"github.com/jmylchreest/palettex/internal/seed"
)

type (
	// Color is an opaque 8-bit RGB colour.
	Color = colour.Color
	// Swatch is a palette colour with its population percentage.
	Swatch = colour.Swatch
	// Palette is an extraction result ordered by descending prominence.
	Palette = colour.Palette
)

// Error kinds. Match with errors.Is.
var (
	ErrInvalidBufferLength = colour.ErrInvalidBufferLength
	ErrDimensionMismatch   = colour.ErrDimensionMismatch
	ErrInvalidK            = colour.ErrInvalidK
	ErrEmptyInput          = colour.ErrEmptyInput
	ErrInvalidConfig       = colour.ErrInvalidConfig
)

// dominantK is the cluster count used to find the dominant colour.
const dominantK = 3

// ExtractorConfig holds the clustering parameters of an Extractor.
type ExtractorConfig struct {
	MaxIterations        int
	ConvergenceThreshold float64
	Verbose              bool
}

// DefaultExtractorConfig returns the configuration of a new Extractor.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxIterations:        colour.DefaultMaxIterations,
		ConvergenceThreshold: colour.DefaultConvergenceThreshold,
		Verbose:              false,
	}
}

// Extractor extracts palettes from RGBA pixel buffers.
type Extractor struct {
	config ExtractorConfig
	logger hclog.Logger
}

// Option configures an Extractor at construction.
type Option func(*Extractor)

// WithLogger sets the sink for verbose traces.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New creates an Extractor with the default configuration.
func New(opts ...Option) *Extractor {
	e := &Extractor{config: DefaultExtractorConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns a copy of the current configuration.
func (e *Extractor) Config() ExtractorConfig {
	return e.config
}

// SetMaxIterations sets the iteration bound. n must be at least 1.
func (e *Extractor) SetMaxIterations(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidConfig, n)
	}
	e.config.MaxIterations = n
	return nil
}

// SetConvergence sets the centroid movement threshold. t must be finite
// and non-negative.
func (e *Extractor) SetConvergence(t float64) error {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: convergence threshold must be a non-negative number, got %v", ErrInvalidConfig, t)
	}
	e.config.ConvergenceThreshold = t
	return nil
}

// SetVerbose toggles diagnostic logging. It never changes results.
func (e *Extractor) SetVerbose(v bool) {
	e.config.Verbose = v
}

// ExtractOption adjusts a single extraction call.
type ExtractOption func(*extractSettings)

type extractSettings struct {
	seed *int64
}

// WithSeed makes the extraction deterministic for the given seed.
func WithSeed(s int64) ExtractOption {
	return func(es *extractSettings) {
		es.seed = &s
	}
}

// ExtractPaletteFromPixels clusters an RGBA buffer into at most k colours.
func (e *Extractor) ExtractPaletteFromPixels(pixels []byte, k int, opts ...ExtractOption) (*Palette, error) {
	samples, err := colour.SamplesFromBuffer(pixels, colour.StrideRGBA)
	if err != nil {
		return nil, err
	}
	return e.extract(samples, k, opts)
}

// ExtractPaletteFromImageData is ExtractPaletteFromPixels with the buffer
// length checked against width*height RGBA pixels.
func (e *Extractor) ExtractPaletteFromImageData(pixels []byte, width, height, k int, opts ...ExtractOption) (*Palette, error) {
	samples, err := colour.SamplesFromImageData(pixels, width, height, colour.StrideRGBA)
	if err != nil {
		return nil, err
	}
	return e.extract(samples, k, opts)
}

// ExtractDominantColor returns the most populated cluster's colour.
func (e *Extractor) ExtractDominantColor(pixels []byte, opts ...ExtractOption) (Color, error) {
	samples, err := colour.SamplesFromBuffer(pixels, colour.StrideRGBA)
	if err != nil {
		return Color{}, err
	}
	p, err := e.extract(samples, min(dominantK, len(samples)), opts)
	if err != nil {
		return Color{}, err
	}
	dominant, ok := p.Dominant()
	if !ok {
		return Color{}, fmt.Errorf("%w: no populated clusters", ErrEmptyInput)
	}
	return dominant.Color, nil
}

func (e *Extractor) extract(samples []Color, k int, opts []ExtractOption) (*Palette, error) {
	var settings extractSettings
	for _, opt := range opts {
		opt(&settings)
	}

	s := seed.Random()
	if settings.seed != nil {
		s = *settings.seed
	}

	logger := e.traceLogger()
	logger.Debug("extracting palette", "samples", len(samples), "k", k,
		"max_iterations", e.config.MaxIterations, "convergence", e.config.ConvergenceThreshold)

	res, err := colour.Cluster(samples, k, colour.ClusterOptions{
		MaxIterations:        e.config.MaxIterations,
		ConvergenceThreshold: e.config.ConvergenceThreshold,
		Rand:                 colour.NewRand(s),
		Logger:               logger,
	})
	if err != nil {
		return nil, err
	}

	return colour.NewPalette(res.Centroids, res.Counts, len(samples)), nil
}

// traceLogger returns the logger for the current call: a null logger unless
// verbose, otherwise the configured one or a stderr logger created on demand.
func (e *Extractor) traceLogger() hclog.Logger {
	if !e.config.Verbose {
		return hclog.NewNullLogger()
	}
	if e.logger == nil {
		e.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "palettex",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return e.logger
}

// NewColor returns the colour with the given channels.
func NewColor(r, g, b uint8) Color {
	return colour.NewColor(r, g, b)
}

// ParseHex parses "#rrggbb" or "#rgb"; the hash is optional.
func ParseHex(s string) (Color, error) {
	return colour.ParseHex(s)
}

// Distance returns the Euclidean RGB distance between two colours.
func Distance(a, b Color) float64 {
	return colour.Distance(a, b)
}

// SortByLuminance returns the colours ordered dark to light.
func SortByLuminance(colors []Color) []Color {
	return colour.SortByLuminance(colors)
}

// RemoveSimilar drops colours within threshold of an earlier kept colour.
func RemoveSimilar(colors []Color, threshold float64) []Color {
	return colour.RemoveSimilar(colors, threshold)
}
