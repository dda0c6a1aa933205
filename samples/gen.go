// Package samples - synthetic instance generators.
//
// All generators are deterministic: seed==0 selects a fixed default seed and
// the wall clock is never consulted.
package samples

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ringsom/vec"
)

const defaultSeed int64 = 1

// rngFromSeed returns a deterministic generator; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id (SplitMix64 finalizer), so
// every cluster draws from its own stream.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Circle places n points evenly on a circle of the given radius, starting at
// angle 0 and turning counter-clockwise.
//
// Errors: ErrBadParameter for n < 1 or a negative/non-finite radius.
func Circle(n int, radius float64, center vec.Vector) ([]vec.Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParameter, n)
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius=%v", ErrBadParameter, radius)
	}

	var (
		pts  = make([]vec.Vector, n)
		step = 360 / float64(n)
		arm  = vec.New(radius, 0)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[i] = center.Add(arm.Rotate(step * float64(i)))
	}

	return pts, nil
}

// Uniform draws n points uniformly from box.
//
// Errors: ErrBadParameter for n < 1 or a box with non-finite corners.
func Uniform(n int, box vec.Box, seed int64) ([]vec.Vector, error) {
	if err := checkBox(n, box); err != nil {
		return nil, err
	}

	var (
		rng  = rngFromSeed(seed)
		size = box.Size()
		pts  = make([]vec.Vector, n)
		i    int
	)
	for i = 0; i < n; i++ {
		pts[i] = box.Min.Add(vec.New(rng.Float64()*size.X, rng.Float64()*size.Y))
	}

	return pts, nil
}

// Clusters draws n points around k centres placed uniformly in box. Points
// are dealt to clusters round-robin and scattered normally with a standard
// deviation of 5% of the smaller box side, clamped to the box.
//
// Errors: ErrBadParameter for n < 1, k < 1, k > n or a non-finite box.
func Clusters(n, k int, box vec.Box, seed int64) ([]vec.Vector, error) {
	if err := checkBox(n, box); err != nil {
		return nil, err
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d for n=%d", ErrBadParameter, k, n)
	}

	var (
		base    = rngFromSeed(seed)
		size    = box.Size()
		sigma   = 0.05 * math.Min(size.X, size.Y)
		centres = make([]vec.Vector, k)
		streams = make([]*rand.Rand, k)
		pts     = make([]vec.Vector, n)
		c       int
		i       int
	)
	for c = 0; c < k; c++ {
		centres[c] = box.Min.Add(vec.New(base.Float64()*size.X, base.Float64()*size.Y))
		streams[c] = rand.New(rand.NewSource(deriveSeed(base.Int63(), uint64(c))))
	}
	for i = 0; i < n; i++ {
		c = i % k
		p := centres[c].Add(vec.New(streams[c].NormFloat64()*sigma, streams[c].NormFloat64()*sigma))
		pts[i] = clamp(p, box)
	}

	return pts, nil
}

func checkBox(n int, box vec.Box) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrBadParameter, n)
	}
	if !box.Min.IsFinite() || !box.Max.IsFinite() || box.Max.X < box.Min.X || box.Max.Y < box.Min.Y {
		return fmt.Errorf("%w: box %v..%v", ErrBadParameter, box.Min, box.Max)
	}

	return nil
}

func clamp(p vec.Vector, box vec.Box) vec.Vector {
	return vec.New(
		math.Max(box.Min.X, math.Min(box.Max.X, p.X)),
		math.Max(box.Min.Y, math.Min(box.Max.Y, p.Y)),
	)
}
