// Package tsp - candidate-restricted 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open tour,
// considering only moves that connect a node to one of its candidates.
//
// For position u_i with u=T[u_i], v=T[u_i+1] and a candidate w at w_i with
// successor z=T[(w_i+1) mod n]:
//
//	current   = d(u,v) + d(w,z)
//	candidate = d(u,w) + d(v,z)
//
// A move is accepted when candidate < current: the edges (u,v),(w,z) are
// replaced by (u,w),(v,z) by reversing the positions between them. The
// remaining candidates of u are then skipped and the scan moves to u_i+1.
//
// Design:
//   - Scan order is fixed (positions ascending, candidates in list order),
//     so the final tour is a pure function of the input; first-improvement
//     is order-sensitive.
//   - Position lookups go through a node→position index that every reversal
//     keeps current, so later checks in the same sweep see applied moves.
//   - Integer distances: no epsilon, strict improvement only.
//
// Complexity:
//   - One sweep: O(n·k) checks; each accepted move O(n) for the reversal.
//   - Runs sweeps until one applies no move.
package tsp

import (
	"github.com/katalvlaran/lvtour/matrix"
	"github.com/katalvlaran/lvtour/neighbors"
)

// TwoOpt improves tour in place until no candidate move shortens it.
//
// Contracts:
//   - tour is a permutation of [0,n) with n == dm.Size() == cands.Size().
//   - On error the tour is left untouched.
//
// Errors: ErrNilInput, ErrDimensionMismatch.
func TwoOpt(dm *matrix.Distance, cands *neighbors.Candidates, tour []int) (TwoOptStats, error) {
	var stats TwoOptStats
	if dm == nil || cands == nil {
		return stats, ErrNilInput
	}
	n := len(tour)
	if dm.Size() != n || cands.Size() != n {
		return stats, ErrDimensionMismatch
	}
	if err := ValidatePermutation(tour, n); err != nil {
		return stats, err
	}

	var (
		rows     = dm.Rows()
		pos      = Positions(tour)
		improved bool
	)
	for {
		stats.Sweeps++
		improved = sweep(rows, cands, tour, pos, &stats)
		if !improved {
			// Local optimum under the candidate neighbourhood.
			break
		}
	}

	return stats, nil
}

// sweep runs one pass over positions 0..n-2 and reports whether any move
// was applied.
func sweep(rows [][]int64, cands *neighbors.Candidates, tour, pos []int, stats *TwoOptStats) bool {
	var (
		n             = len(tour)
		improved      bool
		ui, wi        int
		u, v, w, z    int
		current, cand int64
	)
	for ui = 0; ui < n-1; ui++ {
		u = tour[ui]
		v = tour[ui+1]
		for _, w = range cands.Of(u) {
			if w == u {
				continue // trailing sentinel
			}
			wi = pos[w]
			// w already adjacent to u on the (u,v) side: not a 2-opt move.
			if wi == ui || wi == ui+1 {
				continue
			}
			z = tour[(wi+1)%n]

			current = rows[u][v] + rows[w][z]
			cand = rows[u][w] + rows[v][z]
			if cand >= current {
				continue
			}

			// Reverse the stretch between the two removed edges.
			if wi > ui {
				reverseSegment(tour, pos, ui+1, wi)
			} else {
				reverseSegment(tour, pos, wi+1, ui)
			}
			stats.Moves++
			stats.Gain += current - cand
			improved = true

			break
		}
	}

	return improved
}
