package ring

// Prune collapses adjacent neurons that converged onto each other.
//
// Walking from the entry, while Size > 1 and the current neuron lies within
// RemoveDistance of its successor, the successor is removed and the same
// neuron is tested against its new successor. Every removal re-anchors the
// walk at the current neuron, which also becomes the entry; the walk stops
// after one full lap without a removal.
//
// Postcondition: Size == 1, or every pair of adjacent neurons is farther
// apart than RemoveDistance. Returns the number of removed neurons.
// The ring invariants are verified before returning.
//
// Complexity: O(size²) worst case, O(size) when nothing is removed.
func (r *Ring) Prune() int {
	if r.size == 0 {
		return 0
	}

	var (
		limit   = r.opts.RemoveDistance
		anchor  = r.entry
		cur     = anchor
		removed int
	)
	for {
		for r.size > 1 && r.nodes[cur].pos.Dist(r.nodes[r.nodes[cur].next].pos) <= limit {
			r.removeAfter(cur)
			r.entry = cur
			anchor = cur
			removed++
		}

		cur = r.nodes[cur].next
		if cur == anchor {
			break
		}
	}

	r.mustValid("prune")

	return removed
}
