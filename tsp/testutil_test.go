// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/neighbors"
	"github.com/katalvlaran/lvtour/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed for synthetic instances.
	seedDet = int64(7)

	// sideLen is the square side for uniform instances.
	sideLen = 1000.0

	// kDef mirrors the production default candidate size.
	kDef = neighbors.DefaultK
)

// squarePts is the 10×10 square whose optimal tour is its perimeter (40).
func squarePts() []geom.Point {
	return []geom.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
}

// Repeat runs fn n times to surface hidden nondeterminism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// setup builds matrix and candidates for pts.
func setup(t testing.TB, pts []geom.Point, k int) (*matrix.Distance, *neighbors.Candidates) {
	t.Helper()
	dm, err := matrix.NewDistance(pts)
	require.NoError(t, err)
	c, err := neighbors.Build(dm, k)
	require.NoError(t, err)

	return dm, c
}

// mustLength returns TourLength or fails the test.
func mustLength(t testing.TB, dm *matrix.Distance, tour []int) int64 {
	t.Helper()
	l, err := tsp.TourLength(dm, tour)
	require.NoError(t, err)

	return l
}

// identity returns [0, 1, …, n-1].
func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// naiveTwoOpt is the reference 2-opt: same scan order and acceptance rule
// as tsp.TwoOpt but with a linear search for every candidate position.
func naiveTwoOpt(dm *matrix.Distance, c *neighbors.Candidates, tour []int) int {
	rows := dm.Rows()
	n := len(tour)
	moves := 0
	for {
		improved := false
		for ui := 0; ui < n-1; ui++ {
			u, v := tour[ui], tour[ui+1]
			for _, w := range c.Of(u) {
				if w == u {
					continue
				}
				wi := slices.Index(tour, w)
				if wi == ui || wi == ui+1 {
					continue
				}
				z := tour[(wi+1)%n]
				if rows[u][w]+rows[v][z] < rows[u][v]+rows[w][z] {
					if wi > ui {
						slices.Reverse(tour[ui+1 : wi+1])
					} else {
						slices.Reverse(tour[wi+1 : ui+1])
					}
					moves++
					improved = true

					break
				}
			}
		}
		if !improved {
			return moves
		}
	}
}

// improvingCandidateMove reports whether any candidate 2-opt move would
// still shorten tour.
func improvingCandidateMove(dm *matrix.Distance, c *neighbors.Candidates, tour []int) bool {
	rows := dm.Rows()
	pos := tsp.Positions(tour)
	n := len(tour)
	for ui := 0; ui < n-1; ui++ {
		u, v := tour[ui], tour[ui+1]
		for _, w := range c.Of(u) {
			wi := pos[w]
			if w == u || wi == ui || wi == ui+1 {
				continue
			}
			z := tour[(wi+1)%n]
			if rows[u][w]+rows[v][z] < rows[u][v]+rows[w][z] {
				return true
			}
		}
	}

	return false
}

// bruteForceOptimum enumerates every tour fixing node 0 first (n ≤ 9).
func bruteForceOptimum(t testing.TB, dm *matrix.Distance) int64 {
	t.Helper()
	n := dm.Size()
	require.LessOrEqual(t, n, 9)
	perm := identity(n)
	best := int64(-1)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			if l := mustLength(t, dm, perm); best < 0 || l < best {
				best = l
			}
			return
		}
		for j := i; j < n; j++ {
			perm[i], perm[j] = perm[j], perm[i]
			rec(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
	rec(1)

	return best
}
