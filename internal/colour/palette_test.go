package colour

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"testing"
)

func TestNewPalette(t *testing.T) {
	red := Color{R: 255}
	green := Color{G: 255}
	blue := Color{B: 255}

	tests := []struct {
		name      string
		centroids []Color
		counts    []int
		total     int
		want      []Swatch
	}{
		{
			name:      "sorted by prominence",
			centroids: []Color{red, green, blue},
			counts:    []int{1, 6, 3},
			total:     10,
			want:      []Swatch{{green, 60}, {blue, 30}, {red, 10}},
		},
		{
			name:      "ties keep centroid order",
			centroids: []Color{blue, red},
			counts:    []int{2, 2},
			total:     4,
			want:      []Swatch{{blue, 50}, {red, 50}},
		},
		{
			name:      "empty clusters dropped",
			centroids: []Color{red, green},
			counts:    []int{4, 0},
			total:     4,
			want:      []Swatch{{red, 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPalette(tt.centroids, tt.counts, tt.total)
			if !slices.Equal(p.Swatches, tt.want) {
				t.Errorf("NewPalette() = %v, want %v", p.Swatches, tt.want)
			}
		})
	}
}

func TestNewPaletteMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPalette() with mismatched lengths did not panic")
		}
	}()
	NewPalette([]Color{{}}, []int{1, 2}, 3)
}

func TestPalettePercentagesSumTo100(t *testing.T) {
	samples := randomSamples(997, 11)
	res, err := Cluster(samples, 7, ClusterOptions{MaxIterations: 20, ConvergenceThreshold: 5, Rand: NewRand(2)})
	if err != nil {
		t.Fatal(err)
	}

	p := NewPalette(res.Centroids, res.Counts, len(samples))
	sum := 0.0
	for _, pct := range p.Percentages() {
		if pct < 0 || pct > 100 {
			t.Errorf("percentage %v out of range", pct)
		}
		sum += pct
	}
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
	if !slices.IsSortedFunc(p.Percentages(), func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	}) {
		t.Errorf("percentages not descending: %v", p.Percentages())
	}
}

func TestPaletteAccessors(t *testing.T) {
	p := NewPalette([]Color{{R: 1}, {R: 2}}, []int{1, 3}, 4)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if c, ok := p.Color(0); !ok || c != (Color{R: 2}) {
		t.Errorf("Color(0) = %v, %v", c, ok)
	}
	if pct, ok := p.Percentage(1); !ok || pct != 25 {
		t.Errorf("Percentage(1) = %v, %v", pct, ok)
	}
	if _, ok := p.Get(2); ok {
		t.Error("Get(2) should be out of bounds")
	}
	if _, ok := p.Get(-1); ok {
		t.Error("Get(-1) should be out of bounds")
	}
	if d, ok := p.Dominant(); !ok || d.Color != (Color{R: 2}) {
		t.Errorf("Dominant() = %v, %v", d, ok)
	}
	if got := p.Colors(); !slices.Equal(got, []Color{{R: 2}, {R: 1}}) {
		t.Errorf("Colors() = %v", got)
	}

	var visited []int
	for i := range p.All() {
		visited = append(visited, i)
	}
	if !slices.Equal(visited, []int{0, 1}) {
		t.Errorf("All() visited %v", visited)
	}
}

func TestPaletteToJSON(t *testing.T) {
	p := NewPalette([]Color{{R: 255, G: 128, B: 64}}, []int{1}, 1)

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Count != 1 || decoded.Colors[0].Hex != "#ff8040" || decoded.Colors[0].Percentage != 100 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPaletteString(t *testing.T) {
	if got := (&Palette{}).String(); got != "Empty palette" {
		t.Errorf("String() = %q", got)
	}
	got := NewPalette([]Color{{R: 255}}, []int{1}, 1).String()
	if !strings.Contains(got, "#ff0000") || !strings.Contains(got, "100.00%") {
		t.Errorf("String() = %q", got)
	}
}
