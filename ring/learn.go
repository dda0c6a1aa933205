// Package ring - nearest-neuron search and the learning step.
//
// Learning rule for a winner w and ring offset i ∈ [-Spread, +Spread]:
//
//	p(w+i) += (sample - p(w+i)) * exp(-(1+|i|) / (2*progress))
//
// The factor is largest at i=0 and shrinks with |i| and with smaller
// progress, so updates get smaller and sharper as training advances.
package ring

import (
	"math"

	"github.com/katalvlaran/ringsom/vec"
)

// LearnAfter is the number of learning steps between two growth checks for
// n samples.
func LearnAfter(n int) int { return n }

// GrowThreshold is the hit count at which a neuron spawns a successor, 1/ln(n).
// It is +Inf for n == 1 (ln(1) == 0), so a single sample never triggers growth.
func GrowThreshold(n int) float64 { return 1.0 / math.Log(float64(n)) }

// GrowthLimit is the ring size below which Train may grow, ln(n)*n.
func GrowthLimit(n int) float64 { return math.Log(float64(n)) * float64(n) }

// neighbourhood is the displacement factor at ring distance d and time progress t.
func neighbourhood(d int, t float64) float64 {
	return math.Exp(-(1 + float64(d)) / (2 * t))
}

// Nearest returns the neuron closest to p. The scan starts at the entry and
// only a strictly smaller distance replaces the current best, so ties go to
// the neuron met first from the entry. No side effects.
//
// Complexity: O(size).
func (r *Ring) Nearest(p vec.Vector) (NeuronID, error) {
	if r.size == 0 {
		return NoNeuron, ErrEmptyRing
	}

	return r.nearest(p), nil
}

// nearest is the unchecked linear scan behind Nearest and Train.
func (r *Ring) nearest(p vec.Vector) NeuronID {
	var (
		best  = r.entry
		bestD = r.nodes[best].pos.Dist(p)
		cur   = r.nodes[best].next
		d     float64
		i     int
	)
	for i = 1; i < r.size; i++ {
		if d = r.nodes[cur].pos.Dist(p); d < bestD {
			best, bestD = cur, d
		}
		cur = r.nodes[cur].next
	}

	return best
}

// Train performs one learning step over samples with the given time progress:
//  1. draw one sample uniformly with the ring's generator;
//  2. find the winner and increment its hits;
//  3. walk Spread steps back, then update the 2*Spread+1 neurons of the
//     window in ring order (on rings with at most 2*Spread+1 neurons the
//     window wraps and a neuron may be updated more than once);
//  4. increment Learned;
//  5. if Size < GrowthLimit(n) and Learned >= LearnAfter(n), Grow with
//     GrowThreshold(n), which resets Learned.
//
// Errors: ErrEmptyRing, ErrNoSamples, ErrBadProgress (progress ∉ (0,1] or NaN),
// or the error of the growth step.
//
// Complexity: O(size) for the search, O(Spread) for the update, plus O(size)
// on steps that grow.
func (r *Ring) Train(samples []vec.Vector, progress float64) error {
	if r.size == 0 {
		return ErrEmptyRing
	}
	n := len(samples)
	if n == 0 {
		return ErrNoSamples
	}
	if math.IsNaN(progress) || progress <= 0 || progress > 1 {
		return ErrBadProgress
	}

	var (
		sample = samples[r.rng.Intn(n)]
		winner = r.nearest(sample)
		spread = r.opts.Spread
		cur    = winner
		p      vec.Vector
		i      int
	)
	r.nodes[winner].hits++

	for i = 0; i < spread; i++ {
		cur = r.nodes[cur].prev
	}
	for i = -spread; i <= spread; i++ {
		p = r.nodes[cur].pos
		r.nodes[cur].pos = p.Add(sample.Sub(p).Scale(neighbourhood(absInt(i), progress)))
		cur = r.nodes[cur].next
	}

	r.learned++

	if float64(r.size) < GrowthLimit(n) && r.learned >= LearnAfter(n) {
		if _, err := r.Grow(GrowThreshold(n)); err != nil {
			return err
		}
	}

	return nil
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}

	return i
}
