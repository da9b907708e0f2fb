// Package tsp - tour length.
//
// TourLength is the single source of truth for a tour's cost: it is always
// recomputed from the tour and the distance matrix, never stored.
package tsp

import "github.com/katalvlaran/lvtour/matrix"

// TourLength returns Σ d(tour[i], tour[(i+1) mod n]).
// Tours of length 0 or 1 cost 0. The value is invariant under rotation and
// reversal of the sequence.
//
// Errors: ErrNilInput, ErrDimensionMismatch (index outside [0, dm.Size())).
// Complexity: O(n).
func TourLength(dm *matrix.Distance, tour []int) (int64, error) {
	if dm == nil {
		return 0, ErrNilInput
	}
	var (
		n    = len(tour)
		size = dm.Size()
		rows = dm.Rows()
		sum  int64
		i    int
		u, v int
	)
	for i = 0; i < n; i++ {
		if tour[i] < 0 || tour[i] >= size {
			return 0, ErrDimensionMismatch
		}
	}
	if n < 2 {
		return 0, nil
	}
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		sum += rows[u][v]
	}

	return sum, nil
}
