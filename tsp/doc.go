// Package tsp turns a trained ring into a city tour and polishes it.
//
// The ring only approximates the tour: its neurons sit near cities but are
// not cities. This package provides:
//
//   - FromRing: attach every city to its nearest ring position and read the
//     cities off in ring order, giving a closed tour.
//   - TwoOpt: deterministic first-improvement 2-opt on Euclidean cities.
//   - TourCost: Euclidean length of a closed tour, rounded to 1e-9.
//   - Tour helpers: ValidateTour, MakeTourFromPermutation,
//     CanonicalizeOrientationInPlace, EqualToursModuloRotation, DebugString.
//
// Tours are closed index sequences: len == n+1 and tour[0] == tour[n] ==
// Options.StartVertex.
//
// No logging, no panics on user input; only sentinel errors (types.go).
package tsp
