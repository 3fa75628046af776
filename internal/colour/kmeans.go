package colour

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettex/internal/seed"
)

// Clustering defaults.
const (
	DefaultMaxIterations        = 20
	DefaultConvergenceThreshold = 5.0
)

// ClusterOptions controls a single clustering run.
type ClusterOptions struct {
	// MaxIterations bounds the number of assignment/update passes.
	// Values below 1 still run a single pass.
	MaxIterations int

	// ConvergenceThreshold stops iteration once no centroid moved further
	// than this (Euclidean RGB distance) in the last pass.
	ConvergenceThreshold float64

	// Rand is the only source of randomness. If nil, a generator is seeded
	// from the platform entropy source.
	Rand *rand.Rand

	// Logger receives per-iteration traces. If nil, nothing is logged.
	Logger hclog.Logger
}

// ClusterResult holds the final centroids and the number of samples
// assigned to each in the last assignment pass.
type ClusterResult struct {
	Centroids  []Color
	Counts     []int
	Iterations int
	Converged  bool
}

// NewRand returns a PCG-backed generator derived from seed.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed) // #nosec G115 -- bit pattern reuse, not arithmetic
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Cluster runs k-means with k-means++ seeding over samples.
//
// Exactly k centroids and k counts are returned and the counts sum to
// len(samples). A centroid that ends up with no members keeps its previous
// position rather than being reseeded. Hitting MaxIterations without
// converging is not an error.
func Cluster(samples []Color, k int, opts ClusterOptions) (ClusterResult, error) {
	if len(samples) == 0 {
		return ClusterResult{}, fmt.Errorf("%w: no samples to cluster", ErrEmptyInput)
	}
	if k < 1 || k > len(samples) {
		return ClusterResult{}, fmt.Errorf("%w: k=%d must be between 1 and the sample count %d", ErrInvalidK, k, len(samples))
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewRand(seed.Random())
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	centroids := seedCentroids(samples, k, rng)
	logger.Debug("seeded centroids", "k", k, "samples", len(samples))

	assignments := make([]int, len(samples))
	counts := make([]int, k)
	passes := max(opts.MaxIterations, 1)

	result := ClusterResult{}
	for iter := 1; iter <= passes; iter++ {
		assignSamples(samples, centroids, assignments, counts)
		next := updateCentroids(samples, assignments, counts, centroids)
		movement := maxMovement(centroids, next)
		centroids = next
		result.Iterations = iter

		logger.Debug("kmeans iteration", "iteration", iter, "max_movement", movement)

		if movement <= opts.ConvergenceThreshold {
			result.Converged = true
			break
		}
	}

	logger.Debug("kmeans finished", "iterations", result.Iterations, "converged", result.Converged)

	result.Centroids = centroids
	result.Counts = counts
	return result, nil
}

// seedCentroids picks k initial centroids with k-means++: the first
// uniformly, each further one with probability proportional to its squared
// distance from the nearest centroid chosen so far.
func seedCentroids(samples []Color, k int, rng *rand.Rand) []Color {
	centroids := make([]Color, 0, k)
	centroids = append(centroids, samples[rng.IntN(len(samples))])

	// nearest[i] is the squared distance from samples[i] to its closest centroid.
	nearest := make([]int64, len(samples))
	for i, s := range samples {
		nearest[i] = int64(distanceSq(s, centroids[0]))
	}

	for len(centroids) < k {
		var total int64
		for _, d := range nearest {
			total += d
		}

		var next Color
		if total == 0 {
			// Fewer distinct colours than k. The duplicate loses every
			// assignment tie and finishes empty.
			next = samples[rng.IntN(len(samples))]
		} else {
			target := rng.Int64N(total)
			var cumulative int64
			for i, d := range nearest {
				cumulative += d
				if target < cumulative {
					next = samples[i]
					break
				}
			}
		}
		centroids = append(centroids, next)

		for i, s := range samples {
			if d := int64(distanceSq(s, next)); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return centroids
}

// assignSamples assigns every sample to its nearest centroid, lowest index
// winning ties, and recounts cluster membership.
func assignSamples(samples, centroids []Color, assignments, counts []int) {
	clear(counts)
	for i, s := range samples {
		best := 0
		bestDist := distanceSq(s, centroids[0])
		for j := 1; j < len(centroids); j++ {
			if d := distanceSq(s, centroids[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		assignments[i] = best
		counts[best]++
	}
}

// updateCentroids returns the rounded mean of each cluster. Empty clusters
// keep their previous centroid.
func updateCentroids(samples []Color, assignments, counts []int, previous []Color) []Color {
	sums := make([][3]int64, len(previous))
	for i, s := range samples {
		c := assignments[i]
		sums[c][0] += int64(s.R)
		sums[c][1] += int64(s.G)
		sums[c][2] += int64(s.B)
	}

	next := make([]Color, len(previous))
	for i := range next {
		if counts[i] == 0 {
			next[i] = previous[i]
			continue
		}
		n := int64(counts[i])
		next[i] = Color{
			R: roundedMean(sums[i][0], n),
			G: roundedMean(sums[i][1], n),
			B: roundedMean(sums[i][2], n),
		}
	}
	return next
}

// roundedMean divides a non-negative channel sum, rounding halves up and
// clamping to the channel range.
func roundedMean(sum, n int64) uint8 {
	return uint8(min((sum+n/2)/n, 255)) // #nosec G115 -- clamped above
}

// maxMovement returns the largest Euclidean distance any centroid moved.
func maxMovement(previous, next []Color) float64 {
	var largest int
	for i := range previous {
		largest = max(largest, distanceSq(previous[i], next[i]))
	}
	return math.Sqrt(float64(largest))
}
