// Package tsp - Euclidean tour cost.
//
// Costs are plain Euclidean lengths between city positions, summed along the
// closed tour and rounded to 1e-9 so that equal tours compare equal across
// platforms.
package tsp

import (
	"math"

	"github.com/katalvlaran/ringsom/vec"
)

// roundScale is the cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums the Euclidean lengths of the edges tour[i]→tour[i+1].
//
// Contract:
//   - len(tour) >= 2, every index within [0..len(cities)-1];
//   - every visited city has finite coordinates.
//
// Errors: ErrDimensionMismatch, ErrNonFinite.
//
// Complexity: O(len(tour)).
func TourCost(cities []vec.Vector, tour []int) (float64, error) {
	if len(tour) < 2 || len(cities) == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		n   = len(cities)
		sum float64
		u   int
		v   int
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if !cities[u].IsFinite() || !cities[v].IsFinite() {
			return 0, ErrNonFinite
		}
		sum += cities[u].Dist(cities[v])
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
