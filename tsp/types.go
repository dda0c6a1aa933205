// Package tsp - options and sentinel errors.
package tsp

import (
	"errors"
	"time"
)

var (
	// ErrDimensionMismatch indicates a tour or permutation whose shape does
	// not fit the city set (length, range, duplicates, closure).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start vertex outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrEmptyRing indicates that no ring positions were supplied.
	ErrEmptyRing = errors.New("tsp: empty ring")

	// ErrNonFinite indicates a NaN/Inf city or ring coordinate.
	ErrNonFinite = errors.New("tsp: non-finite coordinate")

	// ErrTimeLimit indicates that a positive time budget ran out.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrBadOptions indicates a negative Eps, TwoOptMaxIters or TimeLimit.
	ErrBadOptions = errors.New("tsp: invalid options")
)

// Options configures tour extraction and the 2-opt polish.
type Options struct {
	// StartVertex is the city every returned tour starts and ends at.
	StartVertex int

	// Eps is the improvement tolerance: a 2-opt move is applied only when it
	// shortens the tour by more than Eps.
	Eps float64

	// TwoOptMaxIters bounds the number of accepted 2-opt moves (0 = until a
	// local optimum is reached).
	TwoOptMaxIters int

	// TimeLimit bounds the wall-clock time of TwoOpt (0 = no limit).
	TimeLimit time.Duration
}

// DefaultOptions returns Options with:
//   - StartVertex = 0;
//   - Eps = 1e-9;
//   - TwoOptMaxIters = 0 (unbounded);
//   - TimeLimit = 0 (unbounded).
func DefaultOptions() Options {
	return Options{
		StartVertex:    0,
		Eps:            1e-9,
		TwoOptMaxIters: 0,
		TimeLimit:      0,
	}
}

// validateOptions checks Options against a city count n.
//
// Complexity: O(1).
func validateOptions(opts Options, n int) error {
	if opts.Eps < 0 || opts.TwoOptMaxIters < 0 || opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return ErrStartOutOfRange
	}

	return nil
}
