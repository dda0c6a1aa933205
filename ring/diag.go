// Package ring - diagnostics and read-only views.
package ring

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ringsom/vec"
)

// Length returns the closed perimeter of the ring: the sum of the distances
// between every pair of adjacent neurons. A one-neuron ring has length 0.
//
// Complexity: O(size).
func (r *Ring) Length() float64 {
	if r.size == 0 {
		return 0
	}

	var (
		sum float64
		cur = r.entry
		i   int
	)
	for i = 0; i < r.size; i++ {
		sum += r.nodes[cur].pos.Dist(r.nodes[r.nodes[cur].next].pos)
		cur = r.nodes[cur].next
	}

	return sum
}

// Positions returns a copy of the neuron positions in ring order, starting
// at the entry. Renderers and exporters consume this snapshot; mutating it
// does not affect the ring.
//
// Complexity: O(size) time and space.
func (r *Ring) Positions() []vec.Vector {
	out := make([]vec.Vector, r.size)
	if r.size == 0 {
		return out
	}

	var (
		cur = r.entry
		i   int
	)
	for i = 0; i < r.size; i++ {
		out[i] = r.nodes[cur].pos
		cur = r.nodes[cur].next
	}

	return out
}

// Neurons returns snapshots of all neurons in ring order, starting at the entry.
func (r *Ring) Neurons() []Neuron {
	out := make([]Neuron, 0, r.size)
	if r.size == 0 {
		return out
	}

	var id NeuronID
	for _, id = range r.order() {
		out = append(out, r.snapshot(id))
	}

	return out
}

// Describe enumerates the neurons in ring order, starting immediately after
// the entry:
//
//	Neural net ::
//	  size : 2
//	  neuron 0 at (1.000000, 0.000000)
//	  neuron 1 at (0.000000, 0.000000)
func (r *Ring) Describe() string {
	var b strings.Builder
	b.WriteString("Neural net ::\n")
	fmt.Fprintf(&b, "  size : %d\n", r.size)
	if r.size == 0 {
		return b.String()
	}

	var (
		cur = r.nodes[r.entry].next
		i   int
	)
	for i = 0; i < r.size; i++ {
		fmt.Fprintf(&b, "  neuron %d at %s\n", i, r.nodes[cur].pos)
		cur = r.nodes[cur].next
	}

	return b.String()
}

// String implements fmt.Stringer via Describe.
func (r *Ring) String() string { return r.Describe() }

// Validate checks the ring invariants:
//   - following next from the entry exactly Size times returns to the entry,
//     without meeting the entry earlier;
//   - next(prev(n)) == n and prev(next(n)) == n for every visited neuron;
//   - the arena holds exactly Size live neurons.
//
// Returns an error wrapping ErrBrokenRing on violation, ErrEmptyRing for the zero Ring.
//
// Complexity: O(len(arena)).
func (r *Ring) Validate() error {
	if r.size == 0 {
		return ErrEmptyRing
	}
	if !r.live(r.entry) {
		return fmt.Errorf("%w: entry %d is not a live neuron", ErrBrokenRing, r.entry)
	}

	var (
		cur = r.entry
		n   node
		i   int
	)
	for i = 0; i < r.size; i++ {
		n = r.nodes[cur]
		if !r.live(n.next) || !r.live(n.prev) {
			return fmt.Errorf("%w: neuron %d links to a dead neuron", ErrBrokenRing, cur)
		}
		if r.nodes[n.next].prev != cur || r.nodes[n.prev].next != cur {
			return fmt.Errorf("%w: asymmetric links at neuron %d", ErrBrokenRing, cur)
		}
		cur = n.next
		if cur == r.entry && i < r.size-1 {
			return fmt.Errorf("%w: cycle closes after %d of %d neurons", ErrBrokenRing, i+1, r.size)
		}
	}
	if cur != r.entry {
		return fmt.Errorf("%w: cycle does not close after %d neurons", ErrBrokenRing, r.size)
	}

	live := 0
	for i = range r.nodes {
		if r.nodes[i].alive {
			live++
		}
	}
	if live != r.size {
		return fmt.Errorf("%w: %d live neurons, size %d", ErrBrokenRing, live, r.size)
	}

	return nil
}

// live reports whether id addresses a live arena slot.
func (r *Ring) live(id NeuronID) bool {
	return id >= 0 && int(id) < len(r.nodes) && r.nodes[id].alive
}
