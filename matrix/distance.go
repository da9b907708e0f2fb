// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtour/geom"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// distanceErrorf wraps a sentinel with a uniform Distance context.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// Distance is an immutable n×n table of rounded Euclidean distances.
// n is the order and data holds n*n entries in row-major order.
type Distance struct {
	n    int     // number of points
	data []int64 // flat backing storage, length == n*n
}

// NewDistance builds the distance table for pts.
// Stage 1 (Validate): reject non-finite coordinates.
// Stage 2 (Fill): compute the upper triangle once and mirror it.
// Stage 3 (Finalize): return the table; n==0 yields an empty table.
//
// Errors: geom.ErrNonFinite (wrapped with the point index).
// Complexity: O(n²) time and memory.
func NewDistance(pts []geom.Point) (*Distance, error) {
	if err := geom.ValidatePoints(pts); err != nil {
		return nil, err
	}
	n := len(pts)
	data := make([]int64, n*n)

	var (
		i, j int
		d    int64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geom.RoundedDistance(pts[i], pts[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &Distance{n: n, data: data}, nil
}

// Size returns the matrix order n.
// Complexity: O(1).
func (m *Distance) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns d(i,j).
// Errors: ErrNilMatrix, ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Distance) At(i, j int) (int64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, distanceErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Row returns the i-th row as a read-only view into the backing storage.
// Callers must not modify the returned slice.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Distance) Row(i int) ([]int64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.n {
		return nil, distanceErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}

// Rows returns every row view, indexed by node. Used by hot loops that
// want d[u][v] without bounds-checked accessors.
// Complexity: O(n).
func (m *Distance) Rows() [][]int64 {
	if m == nil {
		return nil
	}
	out := make([][]int64, m.n)

	var i int
	for i = 0; i < m.n; i++ {
		out[i] = m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
	}

	return out
}

// ValidateSymmetric checks d(i,i)==0, d(i,j)==d(j,i) and d(i,j)>=0.
// NewDistance guarantees all three; the check exists for tables built by
// other means and for tests.
//
// Errors: ErrNilMatrix, ErrNonZeroDiagonal, ErrNegativeDistance, ErrAsymmetry.
// Complexity: O(n²) over the upper triangle.
func (m *Distance) ValidateSymmetric() error {
	if m == nil {
		return ErrNilMatrix
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return fmt.Errorf("ValidateSymmetric: d(%d,%d)=%d: %w", i, i, m.data[i*m.n+i], ErrNonZeroDiagonal)
		}
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] < 0 {
				return fmt.Errorf("ValidateSymmetric: d(%d,%d)=%d: %w", i, j, m.data[i*m.n+j], ErrNegativeDistance)
			}
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return fmt.Errorf("ValidateSymmetric: d(%d,%d)!=d(%d,%d): %w", i, j, j, i, ErrAsymmetry)
			}
		}
	}

	return nil
}

// String renders the table row by row, e.g. "[0, 10]\n[10, 0]\n".
// Complexity: O(n²).
func (m *Distance) String() string {
	if m == nil || m.n == 0 {
		return "[]"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
