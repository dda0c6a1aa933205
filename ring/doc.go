// Package ring implements the Adaptive Ring Engine: a growing, ring-shaped
// self-organizing map that approximates a closed tour (heuristic TSP) over a
// set of 2D sample points.
//
// 🚀 What is it?
//
//	A cycle of neurons, each with a 2D position and an activation counter,
//	is pulled toward randomly drawn samples. Neurons that win often spawn a
//	successor at the midpoint of their outgoing edge; neurons that collapse
//	onto their successor are merged back. After enough iterations the ring
//	traces a short round trip through the samples.
//
// ✨ Building blocks:
//   - Topology store: index arena of neurons with next/prev links; O(1)
//     successor, predecessor, insertion and removal.
//   - Nearest: linear O(size) scan from the entry neuron.
//   - Train: one learning step; moves the winner and a window of Spread
//     neighbours on each side, decaying with ring distance and time progress.
//   - Grow: inserts a neuron after every neuron whose hits reached the
//     growth threshold; called from Train every LearnAfter(n) steps.
//   - Prune: collapses adjacent neurons closer than RemoveDistance.
//   - Length / Describe / Positions: diagnostics and read-only snapshots.
//
// ⚙️ Usage:
//
//	r, err := ring.New(box.Center(), ring.WithSeed(42))
//	for t := 1; t <= iters; t++ {
//		progress := float64(iters-t+1) / float64(iters)
//		if err = r.Train(points, progress); err != nil {
//			return err
//		}
//	}
//	r.Prune()
//	fmt.Println(r.Length())
//
// Invariants (after every public operation):
//   - following Next from Entry exactly Size times returns to Entry;
//   - Next(Prev(n)) == n and Prev(Next(n)) == n for every neuron;
//   - Size >= 1.
//
// Errors: precondition violations return the sentinels in errors.go. A broken
// ring detected by Grow or Prune is a topology defect and panics with an
// error wrapping ErrBrokenRing.
//
// Concurrency: a *Ring is single-owner and holds no locks. Randomness comes
// from one generator per ring, seeded once, so a fixed seed reproduces a run.
package ring
