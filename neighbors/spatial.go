package neighbors

import (
	"github.com/tidwall/rtree"

	"github.com/katalvlaran/lvtour/geom"
	"github.com/katalvlaran/lvtour/matrix"
)

// BuildSpatial computes the same lists as Build using an R-tree
// nearest-neighbour scan instead of full row sorts.
//
// Items leave the tree in non-decreasing Euclidean distance and rounding is
// monotone, so once k nodes are held and the next rounded distance exceeds
// the k-th one, no later node can enter the list. Nodes tied with the k-th
// distance are all collected, then the usual (distance, index) sort picks
// the winners, which keeps the output identical to Build.
//
// Errors: ErrInvalidK, ErrNilMatrix, ErrSizeMismatch (len(pts) != dm.Size()).
// Complexity: O(n·(k+t)·log n) typical, t = ties at the cut.
func BuildSpatial(pts []geom.Point, dm *matrix.Distance, K int) (*Candidates, error) {
	if K < 0 {
		return nil, ErrInvalidK
	}
	if dm == nil {
		return nil, ErrNilMatrix
	}
	if len(pts) != dm.Size() {
		return nil, ErrSizeMismatch
	}
	var (
		n    = len(pts)
		k    = EffectiveK(K, n)
		w    = k + 1
		flat = make([]int, n*w)
		rows = dm.Rows()
	)
	if k == 0 {
		var i int
		for i = 0; i < n; i++ {
			flat[i] = i
		}

		return &Candidates{n: n, k: 0, flat: flat}, nil
	}

	var tr rtree.RTreeG[int]
	var (
		i int
		p geom.Point
	)
	for i, p = range pts {
		tr.Insert([2]float64(p), [2]float64(p), i)
	}

	buf := make([]int, 0, 2*k)
	for i = 0; i < n; i++ {
		buf = collectNearest(&tr, pts[i], i, k, rows[i], buf[:0])
		sortByDistance(buf, rows[i])
		copy(flat[i*w:], buf[:k])
		flat[i*w+k] = i
	}

	return &Candidates{n: n, k: k, flat: flat}, nil
}

// collectNearest appends to buf every node j≠self whose rounded distance is
// at most the k-th smallest one.
func collectNearest(tr *rtree.RTreeG[int], target geom.Point, self, k int, row []int64, buf []int) []int {
	var cut int64

	tr.Nearby(
		func(min, max [2]float64, _ int, _ bool) float64 {
			return boxDistSq(target, min, max)
		},
		func(_, _ [2]float64, j int, _ float64) bool {
			if j == self {
				return true
			}
			if len(buf) >= k && row[j] > cut {
				return false
			}
			buf = append(buf, j)
			if len(buf) == k {
				cut = row[j]
			}

			return true
		},
	)

	return buf
}

// boxDistSq is the squared distance from p to the box [min,max];
// zero when p lies inside.
func boxDistSq(p geom.Point, min, max [2]float64) float64 {
	var dx, dy float64
	switch {
	case p[0] < min[0]:
		dx = min[0] - p[0]
	case p[0] > max[0]:
		dx = p[0] - max[0]
	}
	switch {
	case p[1] < min[1]:
		dy = min[1] - p[1]
	case p[1] > max[1]:
		dy = p[1] - max[1]
	}

	return dx*dx + dy*dy
}
