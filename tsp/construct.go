// Package tsp - nearest-neighbour tour construction.
package tsp

import "github.com/katalvlaran/lvtour/matrix"

// NearestNeighbor builds the greedy tour: start at node 0, then repeatedly
// move to the closest unvisited node. Candidates are scanned in index order
// with a strict comparison, so the lowest index wins ties.
//
// Contracts:
//   - The visited set is local to the call; nothing is shared across runs.
//   - n==0 yields an empty tour, n==1 yields [0].
//
// Errors: ErrNilInput.
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dm *matrix.Distance) ([]int, error) {
	if dm == nil {
		return nil, ErrNilInput
	}
	n := dm.Size()
	tour := make([]int, 0, n)
	if n == 0 {
		return tour, nil
	}
	var (
		rows    = dm.Rows()
		visited = make([]bool, n)
		last    = 0
		best    int
		row     []int64
		i, j    int
	)
	tour = append(tour, 0)
	visited[0] = true

	for i = 1; i < n; i++ {
		row = rows[last]
		best = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if best == -1 || row[j] < row[best] {
				best = j
			}
		}
		tour = append(tour, best)
		visited[best] = true
		last = best
	}

	return tour, nil
}
