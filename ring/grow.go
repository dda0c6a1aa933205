package ring

import (
	"fmt"
	"math"
)

// Grow inserts a neuron after every neuron whose hits reached threshold.
//
// The ring order is snapshotted first, so each neuron present at call time is
// examined exactly once and freshly inserted neurons are never re-examined.
// A parent that spawns a successor has its hits consumed (reset to 0).
// Learned is reset to 0.
//
// Returns the number of inserted neurons; Size grows by exactly that much.
// The ring invariants are verified before returning; a violation panics with
// an error wrapping ErrBrokenRing.
//
// Errors: ErrEmptyRing, ErrBadThreshold (NaN).
//
// Complexity: O(size) time, O(size) extra space for the snapshot.
func (r *Ring) Grow(threshold float64) (int, error) {
	if r.size == 0 {
		return 0, ErrEmptyRing
	}
	if math.IsNaN(threshold) {
		return 0, ErrBadThreshold
	}

	var (
		inserted int
		id       NeuronID
	)
	for _, id = range r.order() {
		if float64(r.nodes[id].hits) >= threshold {
			r.nodes[id].hits = 0
			r.insertAfter(id)
			inserted++
		}
	}
	r.learned = 0

	r.mustValid("grow")

	return inserted, nil
}

// mustValid panics if the ring invariants do not hold.
func (r *Ring) mustValid(op string) {
	if err := r.Validate(); err != nil {
		panic(fmt.Errorf("ring: %s: %w", op, err))
	}
}
