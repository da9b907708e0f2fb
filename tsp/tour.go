// Package tsp - tour utilities shared by construction and local search.
//
// A tour is an open permutation of [0,n); the closing edge runs from the
// last entry back to the first. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Positions: node → position index for a tour.
//   - reverseSegment: in-place reversal that keeps the position index current.
//   - RotateToStart / Reversed: equivalent representations of the same cycle.
//   - SameCycle: equality modulo rotation and direction.
//   - CopyTour / DebugString.
//
// Design:
//   - No logging, no panics on user input; sentinel errors from types.go.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// n==0 with an empty perm is valid.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n < 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate also violates the bijection.
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// Positions returns pos with pos[tour[p]] == p.
// The tour must be a valid permutation.
//
// Complexity: O(n).
func Positions(tour []int) []int {
	pos := make([]int, len(tour))

	var p int
	for p = 0; p < len(tour); p++ {
		pos[tour[p]] = p
	}

	return pos
}

// reverseSegment reverses tour[i..k] (inclusive, i ≤ k) in place and
// rewrites pos for every moved node. This is the 2-opt primitive.
//
// Complexity: O(k-i).
func reverseSegment(tour, pos []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		pos[tour[i]] = i
		pos[tour[k]] = k
		i++
		k--
	}
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
//
// Errors: ErrDimensionMismatch if start does not occur in tour.
// Complexity: O(n).
func RotateToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	pivot := -1

	var i int
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// Reversed returns a fresh copy of tour in the opposite direction.
//
// Complexity: O(n).
func Reversed(tour []int) []int {
	n := len(tour)
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = tour[n-1-i]
	}

	return out
}

// SameCycle reports whether a and b describe the same cycle, allowing any
// rotation and either direction.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1

	var i int
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation, e.g. "[0 3 1 2 | 0]"
// where the bar marks the closing edge back to the first node.
//
// Complexity: O(n).
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < len(tour); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(tour[0]))
	sb.WriteByte(']')

	return sb.String()
}
