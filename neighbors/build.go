package neighbors

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtour/matrix"
)

// Build computes candidate lists by sorting every row of dm.
//
// Stage 1 (Validate): K ≥ 0, dm non-nil.
// Stage 2 (Sort): for each i, order all j≠i by (d(i,j), j) and keep the first k.
// Stage 3 (Finalize): append i as the sentinel.
//
// Complexity: O(n² log n) time, O(n·k) memory plus one O(n) scratch buffer.
func Build(dm *matrix.Distance, K int) (*Candidates, error) {
	if K < 0 {
		return nil, ErrInvalidK
	}
	if dm == nil {
		return nil, ErrNilMatrix
	}
	var (
		n    = dm.Size()
		k    = EffectiveK(K, n)
		w    = k + 1
		flat = make([]int, n*w)
		rows = dm.Rows()
		buf  = make([]int, 0, n)
	)

	var (
		i, j int
		row  []int64
	)
	for i = 0; i < n; i++ {
		row = rows[i]
		buf = buf[:0]
		for j = 0; j < n; j++ {
			if j != i {
				buf = append(buf, j)
			}
		}
		sortByDistance(buf, row)
		copy(flat[i*w:], buf[:k])
		flat[i*w+k] = i
	}

	return &Candidates{n: n, k: k, flat: flat}, nil
}

// sortByDistance orders nodes by (row[node], node). The key is a total
// order, so the result does not depend on sort stability.
func sortByDistance(nodes []int, row []int64) {
	slices.SortFunc(nodes, func(a, b int) int {
		if c := cmp.Compare(row[a], row[b]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
}

// Validate checks the list invariants against dm: every row holds exactly
// k distinct nodes other than its owner, ascending by (distance, index),
// followed by the owner.
//
// Errors: ErrNilMatrix, ErrSizeMismatch (wrapped with the offending row).
// Complexity: O(n·k).
func (c *Candidates) Validate(dm *matrix.Distance) error {
	if dm == nil {
		return ErrNilMatrix
	}
	if c == nil || c.n != dm.Size() || c.k != EffectiveK(c.k, c.n) {
		return ErrSizeMismatch
	}
	rows := dm.Rows()
	seen := make([]int, c.n) // seen[j]==i+1 marks j as used in row i

	var (
		i, p     int
		list     []int
		cur, prv int
	)
	for i = 0; i < c.n; i++ {
		list = c.Of(i)
		if list[c.k] != i {
			return fmt.Errorf("row %d: missing sentinel: %w", i, ErrSizeMismatch)
		}
		for p = 0; p < c.k; p++ {
			cur = list[p]
			if cur < 0 || cur >= c.n || cur == i || seen[cur] == i+1 {
				return fmt.Errorf("row %d: bad entry %d: %w", i, cur, ErrSizeMismatch)
			}
			seen[cur] = i + 1
			if p > 0 {
				prv = list[p-1]
				if rows[i][prv] > rows[i][cur] || (rows[i][prv] == rows[i][cur] && prv > cur) {
					return fmt.Errorf("row %d: order broken at %d: %w", i, p, ErrSizeMismatch)
				}
			}
		}
	}

	return nil
}
