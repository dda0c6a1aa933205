// Package tsp - city tour extraction from a trained ring.
//
// Every city is attached to its nearest ring position (its slot). Cities
// are then ordered by slot in ring order; cities sharing a slot are ordered
// by their projection onto the slot's outgoing edge, then by index. The
// result is a permutation of the cities, rotated to Options.StartVertex and
// closed.
package tsp

import (
	"sort"

	"github.com/katalvlaran/ringsom/vec"
)

// cityKey orders one city along the ring.
type cityKey struct {
	city int
	slot int
	t    float64
}

// FromRing builds a closed city tour from ring positions (in ring order).
//
// Errors: ErrEmptyRing, ErrDimensionMismatch (no cities), ErrNonFinite,
// ErrBadOptions, ErrStartOutOfRange.
//
// Complexity: O(n·m + n log n) for n cities and m ring positions.
func FromRing(ring []vec.Vector, cities []vec.Vector, opts Options) ([]int, error) {
	if len(ring) == 0 {
		return nil, ErrEmptyRing
	}
	n := len(cities)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	if err := validateOptions(opts, n); err != nil {
		return nil, err
	}
	var p vec.Vector
	for _, p = range ring {
		if !p.IsFinite() {
			return nil, ErrNonFinite
		}
	}

	var (
		m    = len(ring)
		keys = make([]cityKey, n)
		i    int
	)
	for i = 0; i < n; i++ {
		if !cities[i].IsFinite() {
			return nil, ErrNonFinite
		}
		slot := nearestSlot(ring, cities[i])
		keys[i] = cityKey{
			city: i,
			slot: slot,
			t:    projection(ring[slot], ring[(slot+1)%m], cities[i]),
		}
	}

	sort.Slice(keys, func(a, b int) bool {
		ka, kb := keys[a], keys[b]
		if ka.slot != kb.slot {
			return ka.slot < kb.slot
		}
		if ka.t != kb.t {
			return ka.t < kb.t
		}

		return ka.city < kb.city
	})

	perm := make([]int, n)
	for i = range keys {
		perm[i] = keys[i].city
	}

	return MakeTourFromPermutation(perm, n, opts.StartVertex)
}

// nearestSlot returns the index of the ring position closest to c; ties go
// to the lower index.
func nearestSlot(ring []vec.Vector, c vec.Vector) int {
	var (
		best  = 0
		bestD = ring[0].Dist(c)
		d     float64
		j     int
	)
	for j = 1; j < len(ring); j++ {
		if d = ring[j].Dist(c); d < bestD {
			best, bestD = j, d
		}
	}

	return best
}

// projection is the scalar position of c along the edge from→to, in units
// of the edge length. A zero-length edge yields 0.
func projection(from, to, c vec.Vector) float64 {
	edge := to.Sub(from)
	l2 := edge.Dot(edge)
	if l2 == 0 {
		return 0
	}

	return c.Sub(from).Dot(edge) / l2
}
