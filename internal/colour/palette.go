package colour

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Swatch is one palette entry: a centroid and its share of the samples.
type Swatch struct {
	Color      Color   `json:"color"`
	Percentage float64 `json:"percentage"`
}

// Palette is an extraction result ordered from most to least prominent.
type Palette struct {
	Swatches []Swatch
}

// NewPalette pairs centroids with their population percentage of total,
// drops empty clusters, and sorts by descending percentage. Equal
// percentages keep centroid order.
func NewPalette(centroids []Color, counts []int, total int) *Palette {
	if len(centroids) != len(counts) {
		panic(fmt.Sprintf("colour: %d centroids but %d counts", len(centroids), len(counts)))
	}

	swatches := make([]Swatch, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 || total <= 0 {
			continue
		}
		swatches = append(swatches, Swatch{
			Color:      c,
			Percentage: 100 * float64(counts[i]) / float64(total),
		})
	}

	slices.SortStableFunc(swatches, func(a, b Swatch) int {
		switch {
		case a.Percentage > b.Percentage:
			return -1
		case a.Percentage < b.Percentage:
			return 1
		default:
			return 0
		}
	})

	return &Palette{Swatches: swatches}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// Get returns the swatch at index.
func (p *Palette) Get(index int) (Swatch, bool) {
	if index < 0 || index >= len(p.Swatches) {
		return Swatch{}, false
	}
	return p.Swatches[index], true
}

// Color returns the colour at index.
func (p *Palette) Color(index int) (Color, bool) {
	s, ok := p.Get(index)
	return s.Color, ok
}

// Percentage returns the population percentage at index.
func (p *Palette) Percentage(index int) (float64, bool) {
	s, ok := p.Get(index)
	return s.Percentage, ok
}

// Dominant returns the most prominent swatch.
func (p *Palette) Dominant() (Swatch, bool) {
	return p.Get(0)
}

// Colors returns the palette colours in order.
func (p *Palette) Colors() []Color {
	colors := make([]Color, len(p.Swatches))
	for i, s := range p.Swatches {
		colors[i] = s.Color
	}
	return colors
}

// Percentages returns the population percentages in order.
func (p *Palette) Percentages() []float64 {
	percentages := make([]float64, len(p.Swatches))
	for i, s := range p.Swatches {
		percentages[i] = s.Percentage
	}
	return percentages
}

// All returns an iterator over the swatches.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}

// SwatchJSON is the JSON form of a swatch.
type SwatchJSON struct {
	Hex        string  `json:"hex"`
	RGB        Color   `json:"rgb"`
	Percentage float64 `json:"percentage"`
}

// PaletteJSON is the JSON form of a palette.
type PaletteJSON struct {
	Count  int          `json:"count"`
	Colors []SwatchJSON `json:"colors"`
}

// ToJSON renders the palette as indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]SwatchJSON, len(p.Swatches))
	for i, s := range p.Swatches {
		colors[i] = SwatchJSON{
			Hex:        s.Color.Hex(),
			RGB:        s.Color,
			Percentage: s.Percentage,
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:  len(colors),
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colors:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		fmt.Fprintf(&b, "  %2d: %s (%s) %6.2f%%\n", i+1, s.Color.Hex(), s.Color.RGBString(), s.Percentage)
	}
	return b.String()
}
