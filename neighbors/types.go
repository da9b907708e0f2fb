package neighbors

import "errors"

// DefaultK is the nominal candidate-list size.
const DefaultK = 20

var (
	// ErrInvalidK is returned when K < 0.
	ErrInvalidK = errors.New("neighbors: K must be non-negative")

	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = errors.New("neighbors: nil distance matrix")

	// ErrSizeMismatch is returned when the point set and the matrix disagree on n,
	// or when a candidate list breaks its invariants.
	ErrSizeMismatch = errors.New("neighbors: size mismatch")
)

// Candidates maps node index → candidate sequence. Immutable after construction.
// Storage is a single flat slice of n*(k+1) entries; row i is
// flat[i*(k+1) : (i+1)*(k+1)], its last entry being i.
type Candidates struct {
	n    int
	k    int
	flat []int
}

// EffectiveK clamps K to the number of other nodes: min(K, n-1), never below 0.
func EffectiveK(K, n int) int {
	if n <= 1 || K <= 0 {
		return 0
	}
	if K > n-1 {
		return n - 1
	}

	return K
}

// Size returns the number of nodes.
func (c *Candidates) Size() int {
	if c == nil {
		return 0
	}

	return c.n
}

// K returns the effective list size (excluding the sentinel).
func (c *Candidates) K() int {
	if c == nil {
		return 0
	}

	return c.k
}

// Of returns the candidate sequence of node i: k neighbours then i.
// The slice aliases internal storage and must not be modified.
// Out-of-range i yields nil.
//
// Complexity: O(1).
func (c *Candidates) Of(i int) []int {
	if c == nil || i < 0 || i >= c.n {
		return nil
	}
	w := c.k + 1

	return c.flat[i*w : (i+1)*w : (i+1)*w]
}
