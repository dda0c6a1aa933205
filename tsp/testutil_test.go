// Package tsp_test provides helpers shared across the tsp test files.
package tsp_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ringsom/vec"
)

const (
	// epsTiny is the tolerance for cost comparisons.
	epsTiny = 1e-9

	// seedDet is the deterministic seed for random instances.
	seedDet = int64(3)
)

// polygon returns the n vertices of a regular polygon of radius r around the
// origin, counter-clockwise from angle 0.
func polygon(n int, r float64) []vec.Vector {
	pts := make([]vec.Vector, n)
	var i int
	for i = 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = vec.New(r*math.Cos(a), r*math.Sin(a))
	}

	return pts
}

// randomCities draws n cities from [0,100)² with a fixed seed.
func randomCities(n int, seed int64) []vec.Vector {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vec.Vector, n)
	var i int
	for i = range pts {
		pts[i] = vec.New(rng.Float64()*100, rng.Float64()*100)
	}

	return pts
}

// identityTour returns the closed tour 0,1,...,n-1,0.
func identityTour(n int) []int {
	t := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}
	t[n] = 0

	return t
}

// shuffledTour returns a closed tour starting at 0 with the rest shuffled.
func shuffledTour(n int, seed int64) []int {
	t := identityTour(n)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n-1, func(i, j int) { t[i+1], t[j+1] = t[j+1], t[i+1] })

	return t
}
