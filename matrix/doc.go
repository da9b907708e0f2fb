// Package matrix provides the dense pairwise-distance table used by the
// tour solvers.
//
// Distance stores round(euclid(i,j)) for every ordered pair of input points
// in a flat row-major []int64, so the hot loops of construction and 2-opt
// read a row with a single slice index and no interface dispatch.
//
// Invariants (checked by ValidateSymmetric, guaranteed by NewDistance):
//   - d(i,i) = 0
//   - d(i,j) = d(j,i) ≥ 0
//
// Complexity: O(n²) time and memory to build; O(1) lookups.
package matrix
