// Package ring_test provides helpers shared across the ring test files.
package ring_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/vec"
)

const (
	// seedDet is the deterministic seed used by every randomized test.
	seedDet = int64(7)

	// epsTiny is the tolerance for closed-form float comparisons.
	epsTiny = 1e-9
)

// circle returns n points evenly spaced on a circle of radius r around c.
func circle(n int, r float64, c vec.Vector) []vec.Vector {
	pts := make([]vec.Vector, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = c.Add(vec.New(r, 0).Rotate(360 * float64(i) / float64(n)))
	}

	return pts
}

// scatter returns n points drawn uniformly from [0,size)² with a fixed seed.
func scatter(n int, size float64, seed int64) []vec.Vector {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vec.Vector, n)
	var i int
	for i = 0; i < n; i++ {
		pts[i] = vec.New(rng.Float64()*size, rng.Float64()*size)
	}

	return pts
}

// mustRing builds a ring from positions or fails the test.
func mustRing(t *testing.T, pts []vec.Vector, opts ...ring.Option) *ring.Ring {
	t.Helper()
	r, err := ring.FromPositions(pts, opts...)
	require.NoError(t, err)

	return r
}

// requireValid asserts the ring invariants, including a manual walk that
// does not trust Validate.
func requireValid(t *testing.T, r *ring.Ring) {
	t.Helper()
	require.NoError(t, r.Validate())

	entry, err := r.Entry()
	require.NoError(t, err)

	var (
		cur  = entry
		next ring.NeuronID
		prev ring.NeuronID
		i    int
	)
	for i = 0; i < r.Size(); i++ {
		next, err = r.Next(cur)
		require.NoError(t, err)
		prev, err = r.Prev(next)
		require.NoError(t, err)
		require.Equal(t, cur, prev, "prev(next(%d)) must be %d", cur, cur)
		cur = next
	}
	require.Equal(t, entry, cur, "walking Size steps must return to the entry")
}

// minGap returns the smallest distance between two adjacent ring positions.
func minGap(r *ring.Ring) float64 {
	pos := r.Positions()
	if len(pos) < 2 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	var i int
	for i = range pos {
		best = math.Min(best, pos[i].Dist(pos[(i+1)%len(pos)]))
	}

	return best
}

// positionsByID indexes neuron positions by id.
func positionsByID(r *ring.Ring) map[ring.NeuronID]vec.Vector {
	out := make(map[ring.NeuronID]vec.Vector, r.Size())
	var n ring.Neuron
	for _, n = range r.Neurons() {
		out[n.ID] = n.Position
	}

	return out
}
