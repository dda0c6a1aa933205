// Package ringsom finds short closed tours through 2D cities with a growing
// ring-shaped self-organizing map.
//
// What is ringsom?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• Geometry: 2D vectors and bounding boxes
//		• Ring: a cyclic chain of neurons that learns, grows and prunes itself
//		• Samples: the plain-text city format plus synthetic generators
//		• Tour: reading a city tour off the ring, 2-opt polishing, costs
//		• Output: PNG frames of the training and GeoJSON export
//		• Solver: the whole pipeline behind one Solve call with hooks
//
// Under the hood everything is organized in subpackages:
//
//	vec/          Vector and Box value types
//	ring/         the ring arena: learning rule, growth, pruning, diagnostics
//	samples/      Read/Write/Load/Save, Bounds, Circle/Uniform/Clusters
//	tsp/          FromRing, TwoOpt, TourCost, tour validation helpers
//	render/       Projection and anti-aliased frame drawing
//	export/       GeoJSON FeatureCollection of cities, ring and tour
//	solver/       Config, Hooks and Solve
//	cmd/ringsom/  CLI: solve, gen, runs
//
// Quick ASCII picture of a ring wrapped around four cities:
//
//	    A·───·B
//	    │     │
//	    C·───·D
//
// The ring starts as one neuron at the centre of the cities, doubles its
// hungriest neurons while it learns, and is pruned where neighbours collapse
// onto the same city.
//
//	go run ./cmd/ringsom gen -shape clusters -n 200 -o cities.tsp
//	go run ./cmd/ringsom solve -l 20000 cities.tsp
package ringsom
