// Package tsp - 2-opt polish on Euclidean cities.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// for cut indices 1 ≤ i < k ≤ n-1 with a=T[i-1], b=T[i], c=T[k], d=T[k+1],
//
//	Δ = |ac| + |bd| - |ab| - |cd|
//
// and a move with Δ < -Eps reverses T[i..k]. Scanning restarts after every
// accepted move. Distances are computed on demand from the coordinates, so
// no n×n matrix is allocated.
//
// Complexity: O(n²) candidate checks per accepted move; O(n) extra space.
package tsp

import (
	"time"

	"github.com/katalvlaran/ringsom/vec"
)

// deadlineStride is how many candidate checks pass between two clock reads.
const deadlineStride = 2048

// TwoOpt improves tour over cities and returns the new tour (same start,
// canonical orientation) with its cost. The input tour is not modified.
// The result never costs more than the input.
//
// Errors: ErrBadOptions, ErrStartOutOfRange, ErrDimensionMismatch,
// ErrNonFinite, ErrTimeLimit (the best tour so far is still returned).
func TwoOpt(cities []vec.Vector, tour []int, opts Options) ([]int, float64, error) {
	n := len(cities)
	if n == 0 {
		return nil, 0, ErrDimensionMismatch
	}
	if err := validateOptions(opts, n); err != nil {
		return nil, 0, err
	}
	if err := ValidateTour(tour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	cur := make([]int, n+1)
	copy(cur, tour)
	cost, err := TourCost(cities, cur)
	if err != nil {
		return nil, 0, err
	}
	if n < 4 {
		// Every tour over three or fewer cities has the same length.
		_ = CanonicalizeOrientationInPlace(cur)
		return cur, cost, nil
	}

	var (
		dist = func(u, v int) float64 { return cities[u].Dist(cities[v]) }

		deadline    time.Time
		useDeadline = opts.TimeLimit > 0
		checks      int
		accepted    int
	)
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	for {
		var (
			improved   bool
			a, b, c, d int
			delta      float64
			i, k       int
		)
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				checks++
				if useDeadline && checks%deadlineStride == 0 && time.Now().After(deadline) {
					_ = CanonicalizeOrientationInPlace(cur)
					return cur, round1e9(cost), ErrTimeLimit
				}

				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = dist(a, c) + dist(b, d) - dist(a, b) - dist(c, d)
				if delta >= -opts.Eps {
					continue
				}

				if err = reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}
				cost += delta
				accepted++
				improved = true

				break scan
			}
		}

		if !improved || (opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters) {
			break
		}
	}

	_ = CanonicalizeOrientationInPlace(cur)

	// Recompute instead of trusting the accumulated deltas.
	cost, err = TourCost(cities, cur)
	if err != nil {
		return nil, 0, err
	}

	return cur, cost, nil
}
