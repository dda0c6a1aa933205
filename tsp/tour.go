// Package tsp - tour structure helpers.
//
// A tour over n cities is a closed index sequence of length n+1 with
// tour[0] == tour[n] == start and every city 0..n-1 appearing exactly once
// in tour[0..n-1]. The helpers below only look at that structure, never at
// coordinates.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var v int
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// MakeTourFromPermutation rotates perm so that start comes first and closes it.
//
// Errors: ErrDimensionMismatch for a non-permutation, ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var pivot, i int
	for i = range perm {
		if perm[i] == start {
			pivot = i
			break
		}
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = perm[(pivot+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// ValidateTour checks the closed-tour invariants for n cities and start.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// CanonicalizeOrientationInPlace picks one of the two directions of a closed
// tour: the neighbour after start must not exceed the neighbour before it.
// Otherwise the interior tour[1..n-1] is reversed.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	n := len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if n >= 3 && tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses tour[i..k] of a closed tour, 1 ≤ i < k ≤ n-1.
// It is the 2-opt move primitive.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] || i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// EqualToursModuloRotation reports whether two closed tours describe the same
// cycle in the same direction, whatever city they start at.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}

	var p, i int
	for p = 0; p < n && b[p] != a[0]; p++ {
	}
	if p == n {
		return false
	}
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// DebugString formats a closed tour as "[0 3 1 2 | 0]", the bar marking the closure.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}

	var (
		b strings.Builder
		n = len(tour) - 1
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	b.WriteString(" | ")
	b.WriteString(strconv.Itoa(tour[n]))
	b.WriteByte(']')

	return b.String()
}
