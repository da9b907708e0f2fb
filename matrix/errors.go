// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ErrX)); callers match them with errors.Is.
// No function panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAsymmetry signals that d(i,j) != d(j,i) for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals that some d(i,i) != 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeDistance signals a negative entry; distances are metric.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
