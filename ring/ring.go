// Package ring - topology store.
//
// Neurons live in an index arena: a slice of records addressed by NeuronID,
// with next/prev stored as indices. Insertion and removal rewrite only the
// links of the two affected neighbours; existing records are never moved,
// so ids stay valid across growth. Removed slots are recycled through a
// free list.
package ring

import (
	"math/rand"

	"github.com/katalvlaran/ringsom/vec"
)

// NeuronID addresses a neuron inside its Ring.
type NeuronID int

// NoNeuron is the invalid id returned alongside errors.
const NoNeuron NeuronID = -1

// Neuron is a read-only snapshot of one neuron.
type Neuron struct {
	ID       NeuronID
	Position vec.Vector
	Hits     int
	Next     NeuronID
	Prev     NeuronID
}

// node is the arena record of a neuron.
type node struct {
	pos   vec.Vector
	hits  int
	next  NeuronID
	prev  NeuronID
	alive bool
}

// Ring is the circular sequence of neurons. Build it with New; the zero value
// has no neurons and every query on it returns ErrEmptyRing.
type Ring struct {
	nodes   []node
	free    []NeuronID
	size    int
	learned int
	entry   NeuronID

	opts Options
	rng  *rand.Rand
}

// New creates a ring with exactly one neuron positioned at center. The single
// neuron is its own successor and predecessor.
//
// Errors: ErrNonFinite for a NaN/Inf center, ErrOptionViolation for invalid options.
//
// Complexity: O(1).
func New(center vec.Vector, opts ...Option) (*Ring, error) {
	if !center.IsFinite() {
		return nil, ErrNonFinite
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	r := &Ring{
		nodes: make([]node, 1, 16),
		entry: 0,
		size:  1,
		opts:  o,
		rng:   rngFromSeed(o.Seed),
	}
	r.nodes[0] = node{pos: center, next: 0, prev: 0, alive: true}

	return r, nil
}

// FromPositions builds a ring whose neurons sit at pts, linked in slice
// order and closed back to pts[0], which becomes the entry. Neuron ids equal
// slice indices. Use it to warm-start training from a known tour.
//
// Errors: ErrNoSamples for empty pts, ErrNonFinite, ErrOptionViolation.
//
// Complexity: O(len(pts)).
func FromPositions(pts []vec.Vector, opts ...Option) (*Ring, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrNoSamples
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	r := &Ring{
		nodes: make([]node, n),
		entry: 0,
		size:  n,
		opts:  o,
		rng:   rngFromSeed(o.Seed),
	}

	var i int
	for i = 0; i < n; i++ {
		if !pts[i].IsFinite() {
			return nil, ErrNonFinite
		}
		r.nodes[i] = node{
			pos:   pts[i],
			next:  NeuronID((i + 1) % n),
			prev:  NeuronID((i - 1 + n) % n),
			alive: true,
		}
	}

	return r, nil
}

// Size returns the current neuron count (0 only for the zero Ring).
func (r *Ring) Size() int { return r.size }

// Learned returns the number of learning steps since the last growth.
func (r *Ring) Learned() int { return r.learned }

// Options returns the effective options of the ring.
func (r *Ring) Options() Options { return r.opts }

// Entry returns the neuron the ring is entered through.
func (r *Ring) Entry() (NeuronID, error) {
	if r.size == 0 {
		return NoNeuron, ErrEmptyRing
	}

	return r.entry, nil
}

// Next returns the successor of id.
func (r *Ring) Next(id NeuronID) (NeuronID, error) {
	if err := r.check(id); err != nil {
		return NoNeuron, err
	}

	return r.nodes[id].next, nil
}

// Prev returns the predecessor of id.
func (r *Ring) Prev(id NeuronID) (NeuronID, error) {
	if err := r.check(id); err != nil {
		return NoNeuron, err
	}

	return r.nodes[id].prev, nil
}

// Neuron returns a snapshot of id.
func (r *Ring) Neuron(id NeuronID) (Neuron, error) {
	if err := r.check(id); err != nil {
		return Neuron{ID: NoNeuron}, err
	}

	return r.snapshot(id), nil
}

// InsertAfter allocates a neuron at the midpoint of id and its current
// successor and splices it in right after id. The new neuron has zero hits.
// On a one-neuron ring the successor is id itself, so the new neuron lands
// on the same position.
//
// Complexity: O(1) amortized.
func (r *Ring) InsertAfter(id NeuronID) (NeuronID, error) {
	if err := r.check(id); err != nil {
		return NoNeuron, err
	}

	return r.insertAfter(id), nil
}

// RemoveAfter deletes the successor of id and relinks id with the removed
// neuron's successor. If the removed neuron was the entry, the entry moves
// to id.
//
// Errors: ErrLastNeuron when only one neuron is left.
//
// Complexity: O(1).
func (r *Ring) RemoveAfter(id NeuronID) error {
	if err := r.check(id); err != nil {
		return err
	}
	if r.size == 1 {
		return ErrLastNeuron
	}
	r.removeAfter(id)

	return nil
}

// check validates that id refers to a live neuron.
func (r *Ring) check(id NeuronID) error {
	if r.size == 0 {
		return ErrEmptyRing
	}
	if id < 0 || int(id) >= len(r.nodes) || !r.nodes[id].alive {
		return ErrUnknownNeuron
	}

	return nil
}

// snapshot copies the arena record of a live id.
func (r *Ring) snapshot(id NeuronID) Neuron {
	n := r.nodes[id]

	return Neuron{ID: id, Position: n.pos, Hits: n.hits, Next: n.next, Prev: n.prev}
}

// alloc returns a fresh slot, recycling removed ones first.
func (r *Ring) alloc(n node) NeuronID {
	var id NeuronID
	if k := len(r.free); k > 0 {
		id = r.free[k-1]
		r.free = r.free[:k-1]
		r.nodes[id] = n
	} else {
		id = NeuronID(len(r.nodes))
		r.nodes = append(r.nodes, n)
	}

	return id
}

// insertAfter splices a midpoint neuron after a live id. No validation.
func (r *Ring) insertAfter(id NeuronID) NeuronID {
	var (
		next  = r.nodes[id].next
		at    = r.nodes[id].pos.Mid(r.nodes[next].pos)
		child NeuronID
	)
	child = r.alloc(node{pos: at, hits: 0, next: next, prev: id, alive: true})
	r.nodes[next].prev = child
	r.nodes[id].next = child
	r.size++

	r.opts.OnInsert(id, child, at)

	return child
}

// removeAfter unlinks the successor of a live id. Requires size > 1.
func (r *Ring) removeAfter(id NeuronID) {
	var (
		gone  = r.nodes[id].next
		after = r.nodes[gone].next
		at    = r.nodes[gone].pos
	)
	r.nodes[id].next = after
	r.nodes[after].prev = id
	r.nodes[gone] = node{next: NoNeuron, prev: NoNeuron}
	r.free = append(r.free, gone)
	r.size--
	if r.entry == gone {
		r.entry = id
	}

	r.opts.OnRemove(id, gone, at)
}

// order returns the live ids in ring order starting at the entry.
//
// Complexity: O(size) time and space.
func (r *Ring) order() []NeuronID {
	out := make([]NeuronID, r.size)
	cur := r.entry

	var i int
	for i = 0; i < r.size; i++ {
		out[i] = cur
		cur = r.nodes[cur].next
	}

	return out
}
