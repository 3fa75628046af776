package colour

import (
	"cmp"
	"math"
	"slices"
)

// Distance returns the Euclidean distance between two colours in RGB space.
func Distance(a, b Color) float64 {
	return math.Sqrt(float64(distanceSq(a, b)))
}

// SortByLuminance returns the colours ordered dark to light. The sort is
// stable and the input slice is left untouched.
func SortByLuminance(colors []Color) []Color {
	sorted := slices.Clone(colors)
	slices.SortStableFunc(sorted, func(a, b Color) int {
		return cmp.Compare(a.Luminance(), b.Luminance())
	})
	return sorted
}

// RemoveSimilar keeps each colour, in input order, only if it is further
// than threshold from every colour already kept. The first occurrence wins.
func RemoveSimilar(colors []Color, threshold float64) []Color {
	kept := make([]Color, 0, len(colors))
	for _, c := range colors {
		similar := slices.ContainsFunc(kept, func(k Color) bool {
			return Distance(c, k) <= threshold
		})
		if !similar {
			kept = append(kept, c)
		}
	}
	return kept
}
