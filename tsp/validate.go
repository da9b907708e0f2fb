// Package tsp - option validation.
//
// Deterministic, side-effect free checks; sentinel errors only.
package tsp

// validateOptions checks the internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.CandidateK < 0 {
		return ErrInvalidK
	}
	if opts.TimeBudget < 0 {
		return ErrNegativeBudget
	}
	if opts.DeadlineGranularity < 0 {
		return ErrNegativeGranularity
	}

	return nil
}
